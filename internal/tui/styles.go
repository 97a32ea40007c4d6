package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/quotedesk/internal/ui"
	"github.com/muurk/quotedesk/internal/version"
)

// Application branding constants
const (
	AppName = "QUOTEDESK"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Editor styles, built on the shared ui palette
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(ui.PrimaryColor).
			Bold(true).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ui.MutedColor).
				Padding(0, 1)

	ActiveModeStyle = lipgloss.NewStyle().
			Foreground(ui.WarningColor).
			Bold(true).
			Padding(0, 1)

	InactiveModeStyle = lipgloss.NewStyle().
				Foreground(ui.MutedColor).
				Padding(0, 1)

	CursorCellStyle = lipgloss.NewStyle().
			Foreground(ui.TextColor).
			Background(ui.MutedColor).
			Padding(0, 1)

	TargetCellStyle = lipgloss.NewStyle().
			Foreground(ui.WarningColor).
			Bold(true).
			Padding(0, 1)

	SentinelCellStyle = lipgloss.NewStyle().
				Foreground(ui.MutedColor).
				Padding(0, 1)

	PromptStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ui.WarningColor).
			Padding(0, 2)
)
