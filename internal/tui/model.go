package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/quotedesk/internal/editor"
	"github.com/muurk/quotedesk/internal/logging"
	"github.com/muurk/quotedesk/internal/pricing"
)

// focusDelay lets the grid render the target cell before the input grabs
// focus.
const focusDelay = 50 * time.Millisecond

// focusMsg delivers a deferred focus request.
type focusMsg struct {
	seq int
}

// Model is the interactive quote editor screen
type Model struct {
	editor   *editor.Editor
	prompts  *editor.PromptQueue
	currency string

	// Grid cursor. Column indexes the visible columns.
	CursorRow int
	CursorCol int

	input    textinput.Model
	focusSeq int

	// LastError is the most recent pricing fault.
	LastError error

	Width    int
	Height   int
	Help     help.Model
	keys     keyMap
	ShowHelp bool
}

// New creates the editor screen. prompts must be the confirmer ed was
// built with so the screen can answer its questions.
func New(ed *editor.Editor, prompts *editor.PromptQueue, currency string) Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64

	return Model{
		editor:   ed,
		prompts:  prompts,
		currency: currency,
		input:    input,
		Help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init activates the Location tab
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tabMsg{tab: editor.TabLocation}
	}
}

// tabMsg activates a tab from a command.
type tabMsg struct {
	tab editor.Tab
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tabMsg:
		return m.apply(m.editor.ActivateTab(msg.tab))

	case focusMsg:
		return m.focus(msg.seq), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.prompts.Pending() != nil {
			return m.updatePrompt(msg)
		}
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateGrid(msg)
	}
	return m, nil
}

// updatePrompt answers the pending confirmation.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.prompts.Resolve(true)
	case "n", "N", "esc":
		m.prompts.Resolve(false)
	default:
		return m, nil
	}
	return m.apply(nil)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.apply(m.editor.HandleTextConfirm(m.input.Value()))
	case "esc":
		m.input.Blur()
		return m.apply(m.editor.HandleModeToggle(m.state().Session.Tab, m.state().Session.Mode))
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		if err := m.editor.HandleTextInput(m.input.Value()); err != nil {
			m.LastError = err
		}
	}
	return m, cmd
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.state()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.ShowHelp = !m.ShowHelp
		m.Help.ShowAll = m.ShowHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.CursorRow > 0 {
			m.CursorRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.CursorRow < len(m.editor.Items())-1 {
			m.CursorRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.CursorCol > 0 {
			m.CursorCol--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.CursorCol < len(st.VisibleColumns)-1 {
			m.CursorCol++
		}
		return m, nil

	case key.Matches(msg, m.keys.Click):
		col, ok := m.cursorColumn()
		if !ok {
			return m, nil
		}
		return m.apply(m.editor.HandleCellClick(m.CursorRow, col))

	case key.Matches(msg, m.keys.Plus):
		return m.counter(st.Session.Mode, editor.Increment)

	case key.Matches(msg, m.keys.Minus):
		return m.counter(st.Session.Mode, editor.Decrement)

	case key.Matches(msg, m.keys.Batch):
		col, ok := m.cursorColumn()
		if !ok {
			return m, nil
		}
		return m.apply(m.editor.HandleBatchCycle(col))
	}

	for i, binding := range m.keys.Tabs {
		if key.Matches(msg, binding) {
			return m.apply(m.editor.ActivateTab(editor.Tabs[i]))
		}
	}
	for mode, binding := range m.keys.Modes {
		if key.Matches(msg, binding) {
			return m.apply(m.editor.HandleModeToggle(mode.Tab(), mode))
		}
	}
	return m, nil
}

// counter sends +/- for the counter the live mode controls.
func (m Model) counter(mode editor.Mode, dir editor.Direction) (tea.Model, tea.Cmd) {
	kind, err := pricing.ParseKind(string(mode))
	if err != nil {
		return m, nil
	}
	return m.apply(m.editor.HandleCounterChange(kind, dir))
}

// apply records err and brings the screen in line with the new state.
func (m Model) apply(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		logging.Error("Editor request failed", zap.Error(err))
	}
	m.LastError = err

	st := m.state()
	if m.CursorCol >= len(st.VisibleColumns) {
		m.CursorCol = 0
	}
	if n := len(m.editor.Items()); m.CursorRow >= n {
		m.CursorRow = n - 1
	}

	if st.Session.Target == nil {
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	}

	// Only the cursor move waits for the focus tick. The input text follows
	// the new target at once.
	if m.input.Value() != st.Session.PendingText {
		m.input.SetValue(st.Session.PendingText)
		m.input.CursorEnd()
	}

	if st.Focus.Seq > m.focusSeq {
		seq := st.Focus.Seq
		return m, tea.Tick(focusDelay, func(time.Time) tea.Msg {
			return focusMsg{seq: seq}
		})
	}
	return m, nil
}

// focus puts the text input on the target cell unless a newer request has
// superseded seq.
func (m Model) focus(seq int) Model {
	st := m.state()
	if seq != st.Focus.Seq || st.Session.Target == nil {
		return m
	}
	m.focusSeq = seq

	target := *st.Session.Target
	m.CursorRow = target.Row
	for i, col := range st.VisibleColumns {
		if col == target.Column {
			m.CursorCol = i
		}
	}

	m.input.SetValue(st.Session.PendingText)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m Model) cursorColumn() (editor.Column, bool) {
	cols := m.state().VisibleColumns
	if m.CursorCol < 0 || m.CursorCol >= len(cols) {
		return "", false
	}
	return cols[m.CursorCol], true
}

func (m Model) state() editor.State {
	return m.editor.State()
}
