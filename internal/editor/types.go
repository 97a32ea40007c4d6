package editor

import (
	"fmt"

	"github.com/muurk/quotedesk/internal/pricing"
	"github.com/muurk/quotedesk/internal/quote"
)

// Tab identifies one of the mutually exclusive editor tabs.
type Tab string

const (
	TabLocation  Tab = "location"
	TabFabric    Tab = "fabric"
	TabOptions   Tab = "options"
	TabDrive     Tab = "driveAccessories"
	TabDualChain Tab = "dualChain"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabLocation, TabFabric, TabOptions, TabDrive, TabDualChain}

// ParseTab converts a tab name into a Tab.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// Title returns the tab caption.
func (t Tab) Title() string {
	switch t {
	case TabLocation:
		return "Location"
	case TabFabric:
		return "Fabric"
	case TabOptions:
		return "Options"
	case TabDrive:
		return "Drive/Accessories"
	case TabDualChain:
		return "Dual/Chain"
	default:
		return string(t)
	}
}

// Mode is the single active edit mode of the editor. Every mode belongs to
// exactly one tab, so at most one tab can ever have a live mode.
type Mode string

const (
	ModeNone         Mode = ""
	ModeLocationEdit Mode = "locationEdit"
	ModeOptionsEdit  Mode = "optionsEdit"
	ModeWinder       Mode = "winder"
	ModeMotor        Mode = "motor"
	ModeRemote       Mode = "remote"
	ModeCharger      Mode = "charger"
	ModeCord         Mode = "cord"
	ModeDual         Mode = "dual"
	ModeChain        Mode = "chain"
)

var modeTabs = map[Mode]Tab{
	ModeLocationEdit: TabLocation,
	ModeOptionsEdit:  TabOptions,
	ModeWinder:       TabDrive,
	ModeMotor:        TabDrive,
	ModeRemote:       TabDrive,
	ModeCharger:      TabDrive,
	ModeCord:         TabDrive,
	ModeDual:         TabDualChain,
	ModeChain:        TabDualChain,
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if _, ok := modeTabs[m]; ok {
		return m, nil
	}
	return ModeNone, fmt.Errorf("unknown mode %q", s)
}

// Tab returns the tab the mode belongs to, or "" for ModeNone.
func (m Mode) Tab() Tab {
	return modeTabs[m]
}

// IsDrive reports whether m is one of the drive/accessories sub-modes.
func (m Mode) IsDrive() bool {
	return m.Tab() == TabDrive
}

// ModesFor returns the modes that can be toggled on tab.
func ModesFor(tab Tab) []Mode {
	switch tab {
	case TabLocation:
		return []Mode{ModeLocationEdit}
	case TabOptions:
		return []Mode{ModeOptionsEdit}
	case TabDrive:
		return []Mode{ModeWinder, ModeMotor, ModeRemote, ModeCharger, ModeCord}
	case TabDualChain:
		return []Mode{ModeDual, ModeChain}
	default:
		return nil
	}
}

// counterKind maps the counter sub-modes to their accessory kind.
func (m Mode) counterKind() (pricing.Kind, bool) {
	switch m {
	case ModeRemote:
		return pricing.KindRemote, true
	case ModeCharger:
		return pricing.KindCharger, true
	case ModeCord:
		return pricing.KindCord, true
	default:
		return "", false
	}
}

// Column identifies a grid column.
type Column string

const (
	ColSequence Column = "sequence"
	ColFabric   Column = "fabricTypeDisplay"
	ColLocation Column = "location"
	ColRoll     Column = "roll"
	ColSide     Column = "side"
	ColWinder   Column = "winder"
	ColMotor    Column = "motor"
	ColDual     Column = "dual"
	ColChain    Column = "chain"
)

// ParseColumn converts a column name into a Column.
func ParseColumn(s string) (Column, error) {
	switch c := Column(s); c {
	case ColSequence, ColFabric, ColLocation, ColRoll, ColSide, ColWinder, ColMotor, ColDual, ColChain:
		return c, nil
	}
	return "", fmt.Errorf("unknown column %q", s)
}

// Header returns the column caption.
func (c Column) Header() string {
	switch c {
	case ColSequence:
		return "#"
	case ColFabric:
		return "Fabric"
	case ColLocation:
		return "Location"
	case ColRoll:
		return "Roll"
	case ColSide:
		return "Side"
	case ColWinder:
		return "Winder"
	case ColMotor:
		return "Motor"
	case ColDual:
		return "Dual"
	case ColChain:
		return "Chain"
	default:
		return string(c)
	}
}

// Value renders the cell of item under column c. Row numbers are 1-based.
func (c Column) Value(row int, item quote.LineItem) string {
	switch c {
	case ColSequence:
		return fmt.Sprintf("%d", row+1)
	case ColFabric:
		return item.Fabric
	case ColLocation:
		return item.Location
	case ColRoll:
		return string(item.Roll)
	case ColSide:
		return string(item.Side)
	case ColWinder:
		return string(item.Winder)
	case ColMotor:
		return string(item.Motor)
	case ColDual:
		return string(item.Dual)
	case ColChain:
		if item.Chain == nil {
			return ""
		}
		return fmt.Sprintf("%d", *item.Chain)
	default:
		return ""
	}
}

// VisibleColumns returns the default column set shown while tab is active.
func VisibleColumns(tab Tab) []Column {
	switch tab {
	case TabLocation:
		return []Column{ColSequence, ColFabric, ColLocation}
	case TabFabric:
		return []Column{ColSequence, ColFabric}
	case TabOptions:
		return []Column{ColSequence, ColFabric, ColLocation, ColRoll, ColSide}
	case TabDrive:
		return []Column{ColSequence, ColFabric, ColLocation, ColWinder, ColMotor}
	case TabDualChain:
		return []Column{ColSequence, ColFabric, ColLocation, ColDual, ColChain}
	default:
		return nil
	}
}

// Cell addresses a single grid cell.
type Cell struct {
	Row    int    `json:"row"`
	Column Column `json:"column"`
}

// Session is the ephemeral edit state: the active tab, its live mode, and
// the cell currently receiving keyboard input.
type Session struct {
	Tab         Tab
	Mode        Mode
	Target      *Cell
	PendingText string
}

// NewSession returns the session the editor starts in.
func NewSession() Session {
	return Session{Tab: TabLocation}
}

// Clone returns a copy that does not share the target cell.
func (s Session) Clone() Session {
	dup := s
	if s.Target != nil {
		t := *s.Target
		dup.Target = &t
	}
	return dup
}

// HasTarget reports whether a cell is receiving input.
func (s Session) HasTarget() bool {
	return s.Target != nil
}

func (s Session) withTarget(row int, col Column, text string) Session {
	s.Target = &Cell{Row: row, Column: col}
	s.PendingText = text
	return s
}

func (s Session) withoutTarget() Session {
	s.Target = nil
	s.PendingText = ""
	return s
}

// Counters holds the global accessory quantities that have no row.
type Counters struct {
	Remote  int
	Charger int
	Cord    int
}

// Get returns the counter for kind.
func (c Counters) Get(kind pricing.Kind) int {
	switch kind {
	case pricing.KindRemote:
		return c.Remote
	case pricing.KindCharger:
		return c.Charger
	case pricing.KindCord:
		return c.Cord
	default:
		return 0
	}
}

// With returns a copy of c with kind set to n.
func (c Counters) With(kind pricing.Kind, n int) Counters {
	switch kind {
	case pricing.KindRemote:
		c.Remote = n
	case pricing.KindCharger:
		c.Charger = n
	case pricing.KindCord:
		c.Cord = n
	}
	return c
}

// Direction is the sense of a counter change.
type Direction int

const (
	Increment Direction = iota
	Decrement
)

// ParseDirection accepts "add"/"+" and "subtract"/"-".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "add", "+", "increment":
		return Increment, nil
	case "subtract", "-", "decrement":
		return Decrement, nil
	}
	return Increment, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) String() string {
	if d == Decrement {
		return "subtract"
	}
	return "add"
}
