// Package ui provides terminal output components for the quotedesk CLI.
//
// It uses Lipgloss to render styled, run-once output for the
// non-interactive commands. The interactive editor lives in the tui package
// and shares the palette defined here.
//
// # Components
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, failure and warning boxes
//   - QuoteSummary: item grid plus accessory price lines
//   - PromptConfirmer: y/N confirmation on a line terminal
//
// # Usage
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Quote Summary", "quotedesk summary", map[string]string{
//	    "Product": "roller",
//	})
//	p.PrintSummary(ui.NewQuoteSummary(ed.State(), ed.Items(), "roller", "AUD"))
//
// # Logging Integration
//
// Logging is controlled via the QUOTEDESK_LOG_LEVEL environment variable.
// When unset or empty, zap logging is silent so the styled output is
// displayed cleanly.
package ui
