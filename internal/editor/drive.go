package editor

import (
	"fmt"

	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
)

// Confirmation prompts for the drive/accessories tab.
const (
	MsgMotorToWinder = "This blind is set to Motor. Are you sure you want to change it to HD Winder?"
	MsgWinderToMotor = "This blind is set to HD Winder. Are you sure you want to change it to Motor?"
)

// MsgZeroWithMotors returns the prompt shown before zeroing remotes or
// chargers while motors are on the quote.
func MsgZeroWithMotors(kind pricing.Kind) string {
	return fmt.Sprintf("Motors are present in the quote. Are you sure you want to set the %s quantity to 0?", kind.Label())
}

var driveHints = map[Mode]string{
	ModeWinder:  "Click a cell under the Winder column to set HD.",
	ModeMotor:   "Click a cell under the Motor column to set Motor.",
	ModeRemote:  "Click + or - to increase or decrease the quantity of remotes.",
	ModeCharger: "Click + or - to increase or decrease the quantity of chargers.",
	ModeCord:    "Click + or - to increase or decrease the quantity of extension cords.",
}

// HintFor returns the instruction shown when mode is entered.
func HintFor(mode Mode) string {
	if hint, ok := driveHints[mode]; ok {
		return hint
	}
	return "Please make your selection."
}

// driveToggle switches drive sub-modes. Leaving any sub-mode reprices the
// whole tab before the new mode takes effect.
func driveToggle(snap Snapshot, s Session, mode Mode) (Session, []Command) {
	var cmds []Command
	if s.Mode.IsDrive() {
		cmds = append(cmds, RecalculateDrive{})
	}

	if s.Mode == mode {
		s.Mode = ModeNone
		return s.withoutTarget(), cmds
	}
	s.Mode = mode
	s = s.withoutTarget()

	// Motors need a remote and a charger, so start those counters at one.
	if kind, ok := mode.counterKind(); ok && kind != pricing.KindCord {
		if quote.HasMotor(snap.Items) && snap.Counters.Get(kind) == 0 {
			cmds = append(cmds, SetCount{Kind: kind, Count: 1})
		}
	}
	return s, append(cmds, notify(NoticeInfo, HintFor(mode)))
}

func driveCellClick(snap Snapshot, s Session, ev CellClick) (Session, []Command) {
	if !snap.editable(ev.Row) {
		return s, nil
	}
	item := snap.Items[ev.Row]

	// A blind is driven by a winder or a motor, never both. Setting one over
	// the other clears the other once confirmed.
	switch {
	case s.Mode == ModeWinder && ev.Column == ColWinder:
		toggle := ToggleMarker{Row: ev.Row, Field: quote.FieldWinder}
		if item.Motor != quote.MotorNone {
			accept := []Command{toggle}
			if item.Winder == quote.WinderNone {
				accept = append(accept, UpdateItem{Row: ev.Row, Field: quote.FieldMotor, Value: quote.MotorNone})
			}
			return s, []Command{Confirm{Message: MsgMotorToWinder, OnAccept: accept}}
		}
		return s, []Command{toggle}

	case s.Mode == ModeMotor && ev.Column == ColMotor:
		toggle := ToggleMarker{Row: ev.Row, Field: quote.FieldMotor}
		if item.Winder != quote.WinderNone {
			accept := []Command{toggle}
			if item.Motor == quote.MotorNone {
				accept = append(accept, UpdateItem{Row: ev.Row, Field: quote.FieldWinder, Value: quote.WinderNone})
			}
			return s, []Command{Confirm{Message: MsgWinderToMotor, OnAccept: accept}}
		}
		return s, []Command{toggle}
	}
	return s, nil
}

// driveCounterChange applies +/- to the counter of the live sub-mode.
// Decrement floors at zero. Zeroing remotes or chargers with motors on the
// quote needs confirmation.
func driveCounterChange(snap Snapshot, s Session, ev CounterChange) (Session, []Command) {
	kind, ok := s.Mode.counterKind()
	if !ok || kind != ev.Kind {
		return s, nil
	}

	current := snap.Counters.Get(kind)
	if ev.Direction == Increment {
		return s, []Command{SetCount{Kind: kind, Count: current + 1}}
	}
	if current <= 0 {
		return s, nil
	}

	next := current - 1
	set := SetCount{Kind: kind, Count: next}
	if next == 0 && kind != pricing.KindCord && quote.HasMotor(snap.Items) {
		return s, []Command{Confirm{Message: MsgZeroWithMotors(kind), OnAccept: []Command{set}}}
	}
	return s, []Command{set}
}
