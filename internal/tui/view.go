package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
	"github.com/muurk/quotedesk/internal/ui"
)

// View renders the editor screen
func (m Model) View() string {
	st := m.state()
	width := m.Width
	if width < ui.MinTerminalWidth {
		width = ui.MinTerminalWidth
	}

	sections := []string{
		m.renderTitle(),
		m.renderTabs(st),
		m.renderModes(st),
		m.renderGrid(st),
	}
	if st.Session.Tab == editor.TabDrive {
		sections = append(sections, m.renderCounters(st))
	}
	sections = append(sections, m.renderPrices(st, width))

	if line := m.renderNotice(st); line != "" {
		sections = append(sections, line)
	}
	if p := m.prompts.Pending(); p != nil {
		sections = append(sections, PromptStyle.Width(width-6).Render(
			ui.WarningTitleStyle.Render(ui.WarningMarker+"  "+p.Message)+"\n\n"+
				SubtitleStyle.Render("y to confirm, n to cancel")))
	} else {
		sections = append(sections, m.Help.View(m.keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderTitle() string {
	product := m.editor.Quote().ProductType()
	return TitleStyle.Render(AppName) + "  " + SubtitleStyle.Render(product+" quote  v"+AppVersion())
}

func (m Model) renderTabs(st editor.State) string {
	tabs := make([]string, 0, len(editor.Tabs))
	for i, tab := range editor.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Title())
		if tab == st.Session.Tab {
			tabs = append(tabs, ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderModes(st editor.State) string {
	modes := editor.ModesFor(st.Session.Tab)
	if len(modes) == 0 {
		return SubtitleStyle.Render("  no edit modes on this tab")
	}
	parts := make([]string, 0, len(modes))
	for _, mode := range modes {
		label := fmt.Sprintf("[%s] %s", modeKeys[mode], modeLabels[mode])
		if mode == st.Session.Mode {
			parts = append(parts, ActiveModeStyle.Render(label))
		} else {
			parts = append(parts, InactiveModeStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderGrid(st editor.State) string {
	items := m.editor.Items()
	cols := st.VisibleColumns

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Header()
	}

	target := st.Session.Target
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.MutedColor)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return ui.TableHeaderStyle
			case target != nil && row == target.Row && cols[col] == target.Column:
				return TargetCellStyle
			case row == m.CursorRow && col == m.CursorCol:
				return CursorCellStyle
			case quote.IsSentinel(items, row):
				return SentinelCellStyle
			default:
				return ui.TableCellStyle
			}
		})

	for row, item := range items {
		cells := make([]string, len(cols))
		for i, col := range cols {
			switch {
			case target != nil && target.Row == row && target.Column == col && m.input.Focused():
				cells[i] = m.input.View()
			case quote.IsSentinel(items, row) && col == editor.ColSequence:
				cells[i] = "+"
			default:
				cells[i] = col.Value(row, item)
			}
		}
		t.Row(cells...)
	}
	return t.Render()
}

func (m Model) renderCounters(st editor.State) string {
	var parts []string
	for _, kind := range []pricing.Kind{pricing.KindRemote, pricing.KindCharger, pricing.KindCord} {
		parts = append(parts, fmt.Sprintf("%s: %d", kind.Label(), st.Counters.Get(kind)))
	}
	return ui.ResultValueStyle.Render("  " + strings.Join(parts, "   "))
}

func (m Model) renderPrices(st editor.State, width int) string {
	var lines []string
	for _, kind := range pricing.DriveKinds {
		line := st.Drive.Line(kind)
		if line.Count == 0 {
			continue
		}
		lines = append(lines, ui.ResultKeyStyle.Render(kind.Label())+" "+
			ui.ResultValueStyle.Render(fmt.Sprintf("%d × %s", line.Count, ui.FormatPrice(line.Price, m.currency))))
	}
	lines = append(lines,
		ui.ResultKeyStyle.Render("Drive total")+" "+ui.TotalStyle.Render(ui.FormatPrice(st.Drive.GrandTotal, m.currency)),
		ui.ResultKeyStyle.Render(pricing.KindDual.Label())+" "+ui.ResultValueStyle.Render(ui.FormatPrice(st.DualPrice, m.currency)),
		ui.ResultKeyStyle.Render("Accessories")+" "+ui.TotalStyle.Render(ui.FormatPrice(st.AccessoriesTotal, m.currency)),
	)
	return ui.PanelStyle(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderNotice(st editor.State) string {
	if m.LastError != nil {
		return ui.ErrorMessageStyle.Render(ui.FailureMarker + " " + editor.UserMessage(m.LastError))
	}
	if st.Notice.Message == "" {
		return ""
	}
	return ui.RenderNotice(st.Notice)
}
