package editor

import "github.com/muurk/quotedesk/internal/quote"

func optionsToggle(s Session) (Session, []Command) {
	if s.Mode == ModeOptionsEdit {
		s.Mode = ModeNone
		return s.withoutTarget(), nil
	}
	s.Mode = ModeOptionsEdit
	return s.withoutTarget(), nil
}

// optionsCellClick cycles the clicked option cell to its next value.
func optionsCellClick(snap Snapshot, s Session, ev CellClick) (Session, []Command) {
	if !snap.editable(ev.Row) {
		return s, nil
	}
	if cmd, ok := cycleOption(ev.Row, ev.Column, snap.Items[ev.Row]); ok {
		return s, []Command{cmd}
	}
	return s, nil
}

// optionsBatchCycle takes the next value after the first row's and writes
// it to every editable row.
func optionsBatchCycle(snap Snapshot, s Session, col Column) (Session, []Command) {
	if !snap.editable(0) {
		return s, nil
	}
	first, ok := cycleOption(0, col, snap.Items[0])
	if !ok {
		return s, nil
	}

	update := first.(UpdateItem)
	cmds := make([]Command, 0, len(snap.Items)-1)
	for row := 0; row < len(snap.Items)-1; row++ {
		cmds = append(cmds, UpdateItem{Row: row, Field: update.Field, Value: update.Value})
	}
	return s, cmds
}

func cycleOption(row int, col Column, item quote.LineItem) (Command, bool) {
	switch col {
	case ColRoll:
		return UpdateItem{Row: row, Field: quote.FieldRoll, Value: item.Roll.Next()}, true
	case ColSide:
		return UpdateItem{Row: row, Field: quote.FieldSide, Value: item.Side.Next()}, true
	}
	return nil, false
}
