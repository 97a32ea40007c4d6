package editor

import (
	"sync"

	"github.com/muurk/quotedesk/internal/pricing"
)

// AccessoryLine is the derived price of one accessory kind.
type AccessoryLine struct {
	Count int
	Unit  float64
	Price float64
}

// AccessorySummary is the drive/accessories price breakdown. It is only ever
// replaced as a whole by a recomputation.
type AccessorySummary struct {
	Lines      map[pricing.Kind]AccessoryLine
	GrandTotal float64
}

// Line returns the line for kind, zero if never computed.
func (s AccessorySummary) Line(kind pricing.Kind) AccessoryLine {
	return s.Lines[kind]
}

func (s AccessorySummary) clone() AccessorySummary {
	dup := AccessorySummary{GrandTotal: s.GrandTotal}
	if s.Lines != nil {
		dup.Lines = make(map[pricing.Kind]AccessoryLine, len(s.Lines))
		for k, v := range s.Lines {
			dup.Lines[k] = v
		}
	}
	return dup
}

// NoticeLevel distinguishes hints from errors.
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is the latest user-facing message. Seq increases with every notice
// so front ends can tell a repeated message from a stale one.
type Notice struct {
	Level   NoticeLevel
	Message string
	Seq     int
}

// FocusRequest asks the front end to move input focus to Target once the
// current event has been rendered.
type FocusRequest struct {
	Target Cell
	Select bool
	Seq    int
}

// State is everything a front end needs to render the editor.
type State struct {
	Session          Session
	Counters         Counters
	Drive            AccessorySummary
	DualPrice        float64
	AccessoriesTotal float64
	VisibleColumns   []Column
	Notice           Notice
	Focus            FocusRequest
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	dup := s
	dup.Session = s.Session.Clone()
	dup.Drive = s.Drive.clone()
	if s.VisibleColumns != nil {
		dup.VisibleColumns = append([]Column(nil), s.VisibleColumns...)
	}
	return dup
}

// Action is a state update dispatched to a Container.
type Action interface {
	Apply(*State)
}

// Container is the host's state store. A dispatched action must be visible
// to the next State call.
type Container interface {
	Dispatch(Action)
	State() State
}

// Store is an in-memory Container.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore creates a store holding the initial editor state.
func NewStore() *Store {
	return &Store{state: State{
		Session:        NewSession(),
		VisibleColumns: VisibleColumns(TabLocation),
	}}
}

// Dispatch applies action.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	action.Apply(&s.state)
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// SetSession replaces the edit session.
type SetSession struct{ Session Session }

func (a SetSession) Apply(s *State) { s.Session = a.Session.Clone() }

// SetCount sets one accessory counter.
type SetCount struct {
	Kind  pricing.Kind
	Count int
}

func (a SetCount) Apply(s *State) { s.Counters = s.Counters.With(a.Kind, a.Count) }

// SetDriveSummary replaces the drive/accessories price breakdown.
type SetDriveSummary struct{ Summary AccessorySummary }

func (a SetDriveSummary) Apply(s *State) { s.Drive = a.Summary.clone() }

// SetDualPrice sets the dual bracket price.
type SetDualPrice struct{ Price float64 }

func (a SetDualPrice) Apply(s *State) { s.DualPrice = a.Price }

// SetAccessoriesTotal sets the dual plus drive accessories total.
type SetAccessoriesTotal struct{ Total float64 }

func (a SetAccessoriesTotal) Apply(s *State) { s.AccessoriesTotal = a.Total }

// SetVisibleColumns sets the grid columns to show.
type SetVisibleColumns struct{ Columns []Column }

func (a SetVisibleColumns) Apply(s *State) {
	s.VisibleColumns = append([]Column(nil), a.Columns...)
}

// ShowNotice publishes a user-facing message.
type ShowNotice struct {
	Level   NoticeLevel
	Message string
}

func (a ShowNotice) Apply(s *State) {
	s.Notice = Notice{Level: a.Level, Message: a.Message, Seq: s.Notice.Seq + 1}
}

// RequestFocus asks the front end to focus a cell.
type RequestFocus struct {
	Target Cell
	Select bool
}

func (a RequestFocus) Apply(s *State) {
	s.Focus = FocusRequest{Target: a.Target, Select: a.Select, Seq: s.Focus.Seq + 1}
}
