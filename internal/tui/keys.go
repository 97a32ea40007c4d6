package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/muurk/quotedesk/internal/editor"
)

// keyMap defines key bindings for the editor screen
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Click key.Binding
	Plus  key.Binding
	Minus key.Binding
	Batch key.Binding
	Help  key.Binding
	Quit  key.Binding

	Tabs  []key.Binding
	Modes map[editor.Mode]key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Click, k.Plus, k.Minus, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	modes := make([]key.Binding, 0, len(modeOrder))
	for _, mode := range modeOrder {
		modes = append(modes, k.Modes[mode])
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Click},
		k.Tabs,
		modes[:5],
		modes[5:],
		{k.Plus, k.Minus, k.Batch, k.Help, k.Quit},
	}
}

// modeOrder is the order modes appear in help.
var modeOrder = []editor.Mode{
	editor.ModeLocationEdit,
	editor.ModeOptionsEdit,
	editor.ModeWinder,
	editor.ModeMotor,
	editor.ModeRemote,
	editor.ModeCharger,
	editor.ModeCord,
	editor.ModeDual,
	editor.ModeChain,
}

var modeKeys = map[editor.Mode]string{
	editor.ModeLocationEdit: "l",
	editor.ModeOptionsEdit:  "o",
	editor.ModeWinder:       "w",
	editor.ModeMotor:        "m",
	editor.ModeRemote:       "r",
	editor.ModeCharger:      "c",
	editor.ModeCord:         "x",
	editor.ModeDual:         "d",
	editor.ModeChain:        "h",
}

var modeLabels = map[editor.Mode]string{
	editor.ModeLocationEdit: "edit locations",
	editor.ModeOptionsEdit:  "edit options",
	editor.ModeWinder:       "HD winder",
	editor.ModeMotor:        "motor",
	editor.ModeRemote:       "remotes",
	editor.ModeCharger:      "chargers",
	editor.ModeCord:         "3m cords",
	editor.ModeDual:         "dual brackets",
	editor.ModeChain:        "chain length",
}

func newKeyMap() keyMap {
	k := keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select cell"),
		),
		Plus: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add"),
		),
		Minus: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "subtract"),
		),
		Batch: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "cycle column"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Modes: make(map[editor.Mode]key.Binding, len(modeKeys)),
	}

	for i, tab := range editor.Tabs {
		n := string(rune('1' + i))
		k.Tabs = append(k.Tabs, key.NewBinding(
			key.WithKeys(n),
			key.WithHelp(n, tab.Title()),
		))
	}
	for mode, keys := range modeKeys {
		k.Modes[mode] = key.NewBinding(
			key.WithKeys(keys),
			key.WithHelp(keys, modeLabels[mode]),
		)
	}
	return k
}
