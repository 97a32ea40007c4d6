// Package tui implements the interactive terminal editor for a quote.
//
// The screen is a Bubble Tea model wrapped around an editor.Editor. Key
// presses become editor events; everything shown is read back from the
// editor state after each event, so the screen never keeps its own copy of
// the session.
//
// # Layout
//
//   - Tab bar: the five tabs, selected with 1-5
//   - Mode bar: the edit modes of the active tab and their keys
//   - Grid: the visible columns of the active tab, with a cell cursor
//   - Counters: remote, charger and cord quantities (Drive/Accessories only)
//   - Price panel: drive lines, drive total, dual price, accessories total
//   - Notice line and help, or the confirmation prompt when one is open
//
// # Text Entry
//
// Location and chain edits use a bubbles/textinput placed in the target
// cell. Focus requests from the editor are delivered after a short tick so
// the target cell is rendered before the input takes over.
//
// # Usage
//
//	prompts := editor.NewPromptQueue()
//	ed := editor.New(store, table, nil, prompts)
//	program := tea.NewProgram(tui.New(ed, prompts, "AUD"), tea.WithAltScreen())
//	if _, err := program.Run(); err != nil {
//		return err
//	}
package tui
