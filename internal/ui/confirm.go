package ui

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muurk/quotedesk/internal/logging"
	"go.uber.org/zap"
)

// PromptConfirmer asks yes/no questions on a line-oriented terminal. It
// implements editor.Confirmer and answers synchronously.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer

	// Default is the answer used for empty input and read errors.
	Default bool
}

// NewPromptConfirmer reads answers from in and writes prompts to out.
// Nil arguments fall back to stdin and stdout.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

// RequestConfirmation implements editor.Confirmer
func (c *PromptConfirmer) RequestConfirmation(message string, onConfirm, onCancel func()) {
	if c.Ask(message) {
		onConfirm()
		return
	}
	onCancel()
}

// Ask prints message in a warning box and reads a y/n answer.
func (c *PromptConfirmer) Ask(message string) bool {
	width := GetTerminalWidth()

	box := WarningBoxStyle(width).Render(
		WarningTitleStyle.Render(WarningMarker+"  CONFIRM") + "\n\n" +
			lipgloss.NewStyle().Foreground(TextColor).Width(width-8).Render(message),
	)
	_, _ = io.WriteString(c.out, box+"\n")

	hint := "[y/N]"
	if c.Default {
		hint = "[Y/n]"
	}
	_, _ = io.WriteString(c.out, WarningTitleStyle.Render("Proceed? "+hint+" "))

	input, err := c.in.ReadString('\n')
	if err != nil && input == "" {
		_, _ = io.WriteString(c.out, "\n")
		logging.Debug("No confirmation input, using default", zap.Error(err), zap.Bool("default", c.Default))
		return c.Default
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return c.Default
	}
}
