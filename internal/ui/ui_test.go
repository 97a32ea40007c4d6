package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
)

func testSummary() QuoteSummary {
	chain := 120
	st := editor.State{
		Drive: editor.AccessorySummary{
			Lines: map[pricing.Kind]editor.AccessoryLine{
				pricing.KindMotor:  {Count: 1, Unit: 250, Price: 250},
				pricing.KindRemote: {Count: 1, Unit: 65, Price: 65},
			},
			GrandTotal: 315,
		},
		DualPrice:        36,
		AccessoriesTotal: 351,
	}
	items := []quote.LineItem{
		{Location: "Kitchen", Fabric: "Blockout", Motor: quote.MotorSet, Chain: &chain},
		{Location: "Lounge", Dual: quote.DualPaired},
		{},
	}
	return NewQuoteSummary(st, items, "roller", "AUD")
}

func TestNewQuoteSummaryDropsSentinel(t *testing.T) {
	s := testSummary()
	if len(s.Items) != 2 {
		t.Fatalf("Items = %d, want 2", len(s.Items))
	}
	if len(s.Lines) != len(pricing.DriveKinds) {
		t.Errorf("Lines = %d, want %d", len(s.Lines), len(pricing.DriveKinds))
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(testSummary(), 80)

	for _, want := range []string{"ROLLER QUOTE", "Kitchen", "Lounge", "120", "AUD 315.00", "AUD 351.00", "Motor"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCompactSummary(t *testing.T) {
	out := RenderCompactSummary(testSummary())

	if strings.Contains(out, "Charger") {
		t.Error("compact summary should skip zero-count lines")
	}
	for _, want := range []string{"Motor", "AUD 250.00", "Drive total", "AUD 36.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("compact summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{12, "AUD", "AUD 12.00"},
		{0.5, "", "0.50"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.amount, tt.currency); got != tt.want {
			t.Errorf("FormatPrice(%v, %q) = %q, want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Configuration written", map[string]string{"Path": "/tmp/x.yaml"}),
			want:   []string{"SUCCESS", "Configuration written", "/tmp/x.yaml"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Replay failed", errors.New("step 3"), []string{"Check the script"}),
			want:   []string{"FAILED", "step 3", "Check the script"},
		},
		{
			name:   "warning",
			result: NewWarningResult("Prompt declined", nil),
			want:   []string{"WARNING", "Prompt declined"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("render missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"empty uses default", "\n", true, true},
		{"eof uses default", "", false, false},
		{"garbage uses default", "maybe\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewPromptConfirmer(strings.NewReader(tt.input), &out)
			c.Default = tt.def

			var got *bool
			c.RequestConfirmation("Remove the motor?",
				func() { v := true; got = &v },
				func() { v := false; got = &v },
			)
			if got == nil || *got != tt.want {
				t.Errorf("answer = %v, want %v", got, tt.want)
			}
			if !strings.Contains(out.String(), "Remove the motor?") {
				t.Error("prompt message not written")
			}
		})
	}
}

func TestPrinterNotice(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNotice(editor.Notice{})
	if buf.Len() != 0 {
		t.Error("empty notice should print nothing")
	}

	p.PrintNotice(editor.Notice{Level: editor.NoticeError, Message: "Only positive integers are allowed.", Seq: 1})
	if !strings.Contains(buf.String(), "Only positive integers are allowed.") {
		t.Errorf("notice output = %q", buf.String())
	}
}
