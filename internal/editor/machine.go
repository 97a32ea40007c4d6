package editor

import (
	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
)

// Event is an input to the state machine.
type Event interface {
	event()
}

// ActivateTab switches to Tab.
type ActivateTab struct{ Tab Tab }

// CellClick is a click on a grid cell.
type CellClick struct {
	Row    int
	Column Column
}

// ModeToggle presses the button for Mode on Tab. Pressing the button of the
// live mode turns it off.
type ModeToggle struct {
	Tab  Tab
	Mode Mode
}

// CounterChange presses + or - on an accessory counter.
type CounterChange struct {
	Kind      pricing.Kind
	Direction Direction
}

// TextInput reports the text currently typed into the input box.
type TextInput struct{ Value string }

// TextConfirm is the Enter key on the input box.
type TextConfirm struct{ Value string }

// BatchCycle advances an option column on every row at once.
type BatchCycle struct{ Column Column }

func (ActivateTab) event()   {}
func (CellClick) event()     {}
func (ModeToggle) event()    {}
func (CounterChange) event() {}
func (TextInput) event()     {}
func (TextConfirm) event()   {}
func (BatchCycle) event()    {}

// Command is a side effect produced by a transition.
type Command interface {
	command()
}

// UpdateItem writes Value to one field of one row.
type UpdateItem struct {
	Row   int
	Field quote.Field
	Value any
}

// ToggleMarker flips a marker field on a row. The current value is read
// when the command runs, not when it was produced, so a deferred toggle
// behind a confirmation still flips the latest value.
type ToggleMarker struct {
	Row   int
	Field quote.Field
}

// RecalculateDrive recomputes every drive/accessories price and the grand total.
type RecalculateDrive struct{}

// RecalculateDual reprices dual brackets and refreshes the accessories total.
type RecalculateDual struct{}

// RefreshAccessoriesTotal reloads the dual price from the quote and
// re-sums it with the last drive/accessories prices.
type RefreshAccessoriesTotal struct{}

// Confirm asks the user Message and runs OnAccept only if they agree.
type Confirm struct {
	Message  string
	OnAccept []Command
}

func (UpdateItem) command()              {}
func (ToggleMarker) command()            {}
func (RecalculateDrive) command()        {}
func (RecalculateDual) command()         {}
func (RefreshAccessoriesTotal) command() {}
func (Confirm) command()                 {}
func (SetCount) command()                {}
func (SetVisibleColumns) command()       {}
func (ShowNotice) command()              {}
func (RequestFocus) command()            {}

// Snapshot is the read-only input of a transition.
type Snapshot struct {
	Session  Session
	Items    []quote.LineItem
	Counters Counters
}

func (s Snapshot) editable(row int) bool {
	return row >= 0 && row < len(s.Items)-1
}

func (s Snapshot) item(row int) (quote.LineItem, bool) {
	if row < 0 || row >= len(s.Items) {
		return quote.LineItem{}, false
	}
	return s.Items[row], true
}

// Step computes the next session for ev and the commands to run. It never
// mutates its input. An event that no mode claims returns the session
// unchanged and no commands.
func Step(snap Snapshot, ev Event) (Session, []Command) {
	s := snap.Session.Clone()

	switch ev := ev.(type) {
	case ActivateTab:
		return activateTab(snap, s, ev.Tab)
	case ModeToggle:
		return toggleMode(snap, s, ev)
	case CellClick:
		return routeCellClick(snap, s, ev)
	case CounterChange:
		if s.Mode.IsDrive() {
			return driveCounterChange(snap, s, ev)
		}
	case TextInput:
		if s.Target != nil {
			s.PendingText = ev.Value
		}
	case TextConfirm:
		return routeTextConfirm(snap, s, ev.Value)
	case BatchCycle:
		if s.Mode == ModeOptionsEdit {
			return optionsBatchCycle(snap, s, ev.Column)
		}
	}
	return s, nil
}

func notify(level NoticeLevel, message string) Command {
	return ShowNotice{Level: level, Message: message}
}

func focus(row int, col Column) Command {
	return RequestFocus{Target: Cell{Row: row, Column: col}, Select: true}
}
