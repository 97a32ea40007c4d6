package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muurk/quotedesk/internal/editor"
)

// Printer provides methods for printing UI components to a writer.
// Non-interactive commands use it for all styled output.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params map[string]string) {
	p.Println(NewHeader(title, command, params).SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details map[string]string) {
	p.Println(NewSuccessResult(title, details).SetWidth(p.width).Render())
}

// PrintWarning prints a warning result box
func (p *Printer) PrintWarning(title string, details map[string]string) {
	p.Println(NewWarningResult(title, details).SetWidth(p.width).Render())
}

// PrintError prints an error result box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	p.Println(RenderErrorBox(title, err, troubleshooting, p.width))
}

// PrintSummary prints the detailed quote summary
func (p *Printer) PrintSummary(s QuoteSummary) {
	p.Println(RenderSummary(s, p.width))
}

// PrintNotice prints an editor notice as a single marked line
func (p *Printer) PrintNotice(n editor.Notice) {
	if n.Message == "" {
		return
	}
	p.Println(RenderNotice(n))
}

// RenderNotice renders an editor notice as a single marked line
func RenderNotice(n editor.Notice) string {
	if n.Level == editor.NoticeError {
		return ErrorMessageStyle.Render(FailureMarker + " " + n.Message)
	}
	return InfoMessageStyle.Render(InfoMarker + " " + n.Message)
}
