package editor

import (
	"strconv"

	"github.com/muurk/quotedesk/internal/quote"
)

// dualChainToggle switches between the dual and chain sub-modes. Leaving
// dual is refused while the paired rows do not form adjacent pairs.
func dualChainToggle(snap Snapshot, s Session, mode Mode) (Session, []Command) {
	if s.Mode == ModeDual {
		if err := ValidateDualSelection(snap.Items); err != nil {
			return s, []Command{notify(NoticeError, UserMessage(err))}
		}
	}

	if s.Mode == mode {
		s.Mode = ModeNone
		return s.withoutTarget(), nil
	}

	s.Mode = mode
	s = s.withoutTarget()
	if mode == ModeDual {
		return s, []Command{RecalculateDual{}}
	}
	return s, nil
}

func dualChainCellClick(snap Snapshot, s Session, ev CellClick) (Session, []Command) {
	if !snap.editable(ev.Row) {
		return s, nil
	}

	switch {
	case s.Mode == ModeDual && ev.Column == ColDual:
		return s, []Command{
			ToggleMarker{Row: ev.Row, Field: quote.FieldDual},
			RecalculateDual{},
		}

	case s.Mode == ModeChain && ev.Column == ColChain:
		text := ""
		if chain := snap.Items[ev.Row].Chain; chain != nil {
			text = strconv.Itoa(*chain)
		}
		s = s.withTarget(ev.Row, ColChain, text)
		return s, []Command{focus(ev.Row, ColChain)}
	}
	return s, nil
}

// chainConfirm commits a chain length to the target row. Rejected input
// keeps the target and the typed text.
func chainConfirm(s Session, value string) (Session, []Command) {
	if s.Target == nil {
		return s, nil
	}

	chain, err := ParseChainValue(value)
	if err != nil {
		s.PendingText = value
		return s, []Command{notify(NoticeError, UserMessage(err))}
	}

	cmds := []Command{UpdateItem{Row: s.Target.Row, Field: quote.FieldChain, Value: chain}}
	return s.withoutTarget(), cmds
}
