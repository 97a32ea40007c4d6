package replay

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/protocol"
	"github.com/muurk/quotedesk/internal/quote"
)

// Script is a recorded editing session: a starting quote, the events to
// apply and, optionally, what the result should look like.
type Script struct {
	Product string             `yaml:"product,omitempty"`
	Rows    int                `yaml:"rows,omitempty"`
	Items   []quote.LineItem   `yaml:"items,omitempty"`
	Steps   []protocol.Request `yaml:"steps"`
	Expect  *Expect            `yaml:"expect,omitempty"`
}

// Expect lists the values checked after the last step. Unset fields are
// not checked.
type Expect struct {
	Tab              string         `yaml:"tab,omitempty"`
	Mode             string         `yaml:"mode,omitempty"`
	DriveTotal       *float64       `yaml:"drive_total,omitempty"`
	DualPrice        *float64       `yaml:"dual_price,omitempty"`
	AccessoriesTotal *float64       `yaml:"accessories_total,omitempty"`
	Counters         map[string]int `yaml:"counters,omitempty"`
	Notice           string         `yaml:"notice,omitempty"`
}

// LoadScript reads a replay script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript decodes and checks a replay script. Every step must convert
// to an editor event or be a confirm reply with an answer.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("script has no steps")
	}
	if s.Rows < 0 {
		return nil, fmt.Errorf("rows must not be negative, got %d", s.Rows)
	}
	if err := quote.ValidateItems(s.Items); err != nil {
		return nil, err
	}
	for i := range s.Steps {
		step := &s.Steps[i]
		if step.IsConfirmReply() {
			if _, err := step.Accepted(); err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			continue
		}
		if _, err := step.Event(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// NewStore builds the starting quote. Items win over rows; with neither the
// quote has defaultRows blank rows.
func (s *Script) NewStore(defaultProduct string, defaultRows int) *quote.Store {
	product := s.Product
	if product == "" {
		product = defaultProduct
	}
	if len(s.Items) > 0 {
		return quote.NewStore(product, quote.CloneItems(s.Items))
	}
	rows := s.Rows
	if rows == 0 {
		rows = defaultRows
	}
	return quote.NewBlankStore(product, rows)
}

// Check compares the final state against the expectations and returns one
// joined error listing every mismatch.
func (e *Expect) Check(st editor.State) error {
	if e == nil {
		return nil
	}
	var errs []error
	if e.Tab != "" && string(st.Session.Tab) != e.Tab {
		errs = append(errs, fmt.Errorf("tab: got %s, want %s", st.Session.Tab, e.Tab))
	}
	if e.Mode != "" && string(st.Session.Mode) != e.Mode {
		errs = append(errs, fmt.Errorf("mode: got %q, want %q", st.Session.Mode, e.Mode))
	}
	checkPrice := func(name string, want *float64, got float64) {
		if want != nil && math.Abs(*want-got) > 0.005 {
			errs = append(errs, fmt.Errorf("%s: got %.2f, want %.2f", name, got, *want))
		}
	}
	checkPrice("drive_total", e.DriveTotal, st.Drive.GrandTotal)
	checkPrice("dual_price", e.DualPrice, st.DualPrice)
	checkPrice("accessories_total", e.AccessoriesTotal, st.AccessoriesTotal)

	for name, want := range e.Counters {
		var got int
		switch name {
		case "remote":
			got = st.Counters.Remote
		case "charger":
			got = st.Counters.Charger
		case "cord":
			got = st.Counters.Cord
		default:
			errs = append(errs, fmt.Errorf("counters: unknown counter %q", name))
			continue
		}
		if got != want {
			errs = append(errs, fmt.Errorf("counters.%s: got %d, want %d", name, got, want))
		}
	}
	if e.Notice != "" && st.Notice.Message != e.Notice {
		errs = append(errs, fmt.Errorf("notice: got %q, want %q", st.Notice.Message, e.Notice))
	}
	return errors.Join(errs...)
}
