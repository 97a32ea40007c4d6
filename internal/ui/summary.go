package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
)

// SummaryLine is one priced accessory in a quote summary.
type SummaryLine struct {
	Kind  pricing.Kind
	Count int
	Unit  float64
	Price float64
}

// QuoteSummary is the printable view of a quote and its accessory prices.
type QuoteSummary struct {
	Product          string
	Currency         string
	Columns          []editor.Column
	Items            []quote.LineItem
	Lines            []SummaryLine
	DriveTotal       float64
	DualPrice        float64
	AccessoriesTotal float64
}

// NewQuoteSummary collects a summary from editor state. The trailing blank
// row is left out.
func NewQuoteSummary(st editor.State, items []quote.LineItem, product, currency string) QuoteSummary {
	s := QuoteSummary{
		Product:          product,
		Currency:         currency,
		Columns:          summaryColumns(),
		DriveTotal:       st.Drive.GrandTotal,
		DualPrice:        st.DualPrice,
		AccessoriesTotal: st.AccessoriesTotal,
	}
	for row, item := range items {
		if quote.IsSentinel(items, row) {
			continue
		}
		s.Items = append(s.Items, item)
	}
	for _, kind := range pricing.DriveKinds {
		line := st.Drive.Line(kind)
		s.Lines = append(s.Lines, SummaryLine{Kind: kind, Count: line.Count, Unit: line.Unit, Price: line.Price})
	}
	return s
}

func summaryColumns() []editor.Column {
	return []editor.Column{
		editor.ColSequence, editor.ColFabric, editor.ColLocation, editor.ColRoll,
		editor.ColSide, editor.ColWinder, editor.ColMotor, editor.ColDual, editor.ColChain,
	}
}

// FormatPrice renders an amount with its currency code.
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// RenderItemTable renders items as a grid showing columns.
func RenderItemTable(columns []editor.Column, items []quote.LineItem) string {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(MutedColor)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})

	for row, item := range items {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i] = col.Value(row, item)
		}
		t.Row(cells...)
	}
	return t.Render()
}

// RenderSummary renders the detailed summary: item grid then price lines.
func RenderSummary(s QuoteSummary, width int) string {
	width = clampWidth(width)

	lines := []string{
		HeaderTitleStyle.Render(strings.ToUpper(s.Product) + " QUOTE"),
		"",
		RenderItemTable(s.Columns, s.Items),
		"",
	}

	for _, line := range s.Lines {
		key := ResultKeyStyle.Render(line.Kind.Label())
		value := fmt.Sprintf("%d × %s = %s", line.Count,
			FormatPrice(line.Unit, s.Currency), FormatPrice(line.Price, s.Currency))
		lines = append(lines, key+" "+ResultValueStyle.Render(value))
	}
	lines = append(lines,
		ResultKeyStyle.Render("Drive total")+" "+TotalStyle.Render(FormatPrice(s.DriveTotal, s.Currency)),
		"",
		ResultKeyStyle.Render(pricing.KindDual.Label())+" "+ResultValueStyle.Render(FormatPrice(s.DualPrice, s.Currency)),
		ResultKeyStyle.Render("Accessories")+" "+TotalStyle.Render(FormatPrice(s.AccessoriesTotal, s.Currency)),
	)

	return PanelStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderCompactSummary renders one plain line per accessory and total.
func RenderCompactSummary(s QuoteSummary) string {
	var b strings.Builder
	for _, line := range s.Lines {
		if line.Count == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-14s %3d  %s\n", line.Kind.Label(), line.Count, FormatPrice(line.Price, s.Currency))
	}
	fmt.Fprintf(&b, "%-14s %3s  %s\n", "Drive total", "", FormatPrice(s.DriveTotal, s.Currency))
	fmt.Fprintf(&b, "%-14s %3s  %s\n", pricing.KindDual.Label(), "", FormatPrice(s.DualPrice, s.Currency))
	fmt.Fprintf(&b, "%-14s %3s  %s\n", "Accessories", "", FormatPrice(s.AccessoriesTotal, s.Currency))
	return b.String()
}
