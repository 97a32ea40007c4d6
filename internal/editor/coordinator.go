package editor

// activateTab leaves the current tab and enters tab. Leaving runs the exit
// rules of the live mode: drive modes reprice, an invalid dual selection
// blocks the switch.
func activateTab(snap Snapshot, s Session, tab Tab) (Session, []Command) {
	if tab == s.Tab {
		return s, activationHook(tab)
	}

	var cmds []Command
	switch {
	case s.Mode.IsDrive():
		cmds = append(cmds, RecalculateDrive{})
	case s.Mode == ModeDual:
		if err := ValidateDualSelection(snap.Items); err != nil {
			return s, []Command{notify(NoticeError, UserMessage(err))}
		}
	}

	next := Session{Tab: tab}
	return next, append(cmds, activationHook(tab)...)
}

func activationHook(tab Tab) []Command {
	cmds := []Command{SetVisibleColumns{Columns: VisibleColumns(tab)}}
	if tab == TabDualChain {
		cmds = append(cmds, RefreshAccessoriesTotal{})
	}
	return cmds
}

// toggleMode hands a mode button press to the tab that owns the mode.
// Presses for a tab other than the active one are ignored.
func toggleMode(snap Snapshot, s Session, ev ModeToggle) (Session, []Command) {
	tab := ev.Mode.Tab()
	if tab == "" || tab != s.Tab || (ev.Tab != "" && ev.Tab != tab) {
		return s, nil
	}

	switch tab {
	case TabLocation:
		return locationToggle(snap, s)
	case TabOptions:
		return optionsToggle(s)
	case TabDrive:
		return driveToggle(snap, s, ev.Mode)
	case TabDualChain:
		return dualChainToggle(snap, s, ev.Mode)
	}
	return s, nil
}

// routeCellClick dispatches on the live mode. Only one mode can be live, so
// at most one handler sees the click. The case order mirrors the historical
// precedence: drive, location, options, dual/chain.
func routeCellClick(snap Snapshot, s Session, ev CellClick) (Session, []Command) {
	switch {
	case s.Mode.IsDrive():
		return driveCellClick(snap, s, ev)
	case s.Mode == ModeLocationEdit:
		return locationCellClick(snap, s, ev)
	case s.Mode == ModeOptionsEdit:
		return optionsCellClick(snap, s, ev)
	case s.Mode == ModeDual || s.Mode == ModeChain:
		return dualChainCellClick(snap, s, ev)
	}
	return s, nil
}

func routeTextConfirm(snap Snapshot, s Session, value string) (Session, []Command) {
	switch s.Mode {
	case ModeLocationEdit:
		return locationConfirm(snap, s, value)
	case ModeChain:
		return chainConfirm(s, value)
	}
	return s, nil
}
