package editor

import "github.com/muurk/quotedesk/internal/quote"

// Sequential location entry. The cursor starts on the first row and walks
// down one row per confirmed value until it runs into the sentinel row.

func locationToggle(snap Snapshot, s Session) (Session, []Command) {
	if s.Mode == ModeLocationEdit {
		s.Mode = ModeNone
		return s.withoutTarget(), nil
	}
	if !snap.editable(0) {
		return s, nil
	}

	s.Mode = ModeLocationEdit
	s = s.withTarget(0, ColLocation, snap.Items[0].Location)
	return s, []Command{focus(0, ColLocation)}
}

// locationCellClick moves the cursor without committing pending text.
func locationCellClick(snap Snapshot, s Session, ev CellClick) (Session, []Command) {
	if !snap.editable(ev.Row) {
		return s, nil
	}
	s = s.withTarget(ev.Row, ColLocation, snap.Items[ev.Row].Location)
	return s, []Command{focus(ev.Row, ColLocation)}
}

func locationConfirm(snap Snapshot, s Session, value string) (Session, []Command) {
	if s.Target == nil {
		return s, nil
	}

	row := s.Target.Row
	cmds := []Command{UpdateItem{Row: row, Field: quote.FieldLocation, Value: value}}

	next := row + 1
	if next < len(snap.Items)-1 {
		s = s.withTarget(next, ColLocation, snap.Items[next].Location)
		return s, append(cmds, focus(next, ColLocation))
	}

	s.Mode = ModeNone
	return s.withoutTarget(), cmds
}
