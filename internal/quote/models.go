package quote

// DualMarker flags a row as one half of a dual bracket pair.
type DualMarker string

const (
	DualNone   DualMarker = ""
	DualPaired DualMarker = "D"
)

// WinderMarker flags a row as fitted with an HD winder.
type WinderMarker string

const (
	WinderNone WinderMarker = ""
	WinderSet  WinderMarker = "HD"
)

// MotorMarker flags a row as motorised.
type MotorMarker string

const (
	MotorNone MotorMarker = ""
	MotorSet  MotorMarker = "Motor"
)

// RollDirection is the fabric roll option of a blind.
type RollDirection string

const (
	RollNone  RollDirection = ""
	RollUnder RollDirection = "UR"
	RollOver  RollDirection = "OR"
)

// Next cycles through the roll options, wrapping back to none.
func (r RollDirection) Next() RollDirection {
	switch r {
	case RollNone:
		return RollUnder
	case RollUnder:
		return RollOver
	default:
		return RollNone
	}
}

// ControlSide is the side the chain or motor head sits on.
type ControlSide string

const (
	SideNone  ControlSide = ""
	SideLeft  ControlSide = "L"
	SideRight ControlSide = "R"
)

// Next cycles through the control sides, wrapping back to none.
func (c ControlSide) Next() ControlSide {
	switch c {
	case SideNone:
		return SideLeft
	case SideLeft:
		return SideRight
	default:
		return SideNone
	}
}

// Field names an editable property of a LineItem.
type Field string

const (
	FieldLocation Field = "location"
	FieldFabric   Field = "fabric"
	FieldDual     Field = "dual"
	FieldChain    Field = "chain"
	FieldWinder   Field = "winder"
	FieldMotor    Field = "motor"
	FieldRoll     Field = "roll"
	FieldSide     Field = "side"
)

// LineItem is one quoted unit.
type LineItem struct {
	Location string        `yaml:"location,omitempty" json:"location,omitempty"`
	Fabric   string        `yaml:"fabric,omitempty" json:"fabric,omitempty"`
	Dual     DualMarker    `yaml:"dual,omitempty" json:"dual,omitempty"`
	Chain    *int          `yaml:"chain,omitempty" json:"chain,omitempty"`
	Winder   WinderMarker  `yaml:"winder,omitempty" json:"winder,omitempty"`
	Motor    MotorMarker   `yaml:"motor,omitempty" json:"motor,omitempty"`
	Roll     RollDirection `yaml:"roll,omitempty" json:"roll,omitempty"`
	Side     ControlSide   `yaml:"side,omitempty" json:"side,omitempty"`
}

// IsEmpty reports whether no field of the item has been filled in.
func (li LineItem) IsEmpty() bool {
	return li.Location == "" &&
		li.Fabric == "" &&
		li.Dual == DualNone &&
		li.Chain == nil &&
		li.Winder == WinderNone &&
		li.Motor == MotorNone &&
		li.Roll == RollNone &&
		li.Side == SideNone
}

// Clone returns a deep copy of the item.
func (li LineItem) Clone() LineItem {
	dup := li
	if li.Chain != nil {
		v := *li.Chain
		dup.Chain = &v
	}
	return dup
}

// CloneItems deep-copies a slice of items.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	dup := make([]LineItem, len(items))
	for i, item := range items {
		dup[i] = item.Clone()
	}
	return dup
}

// IsSentinel reports whether row is the reserved trailing row of items.
func IsSentinel(items []LineItem, row int) bool {
	return row == len(items)-1
}

// CountWinders returns the number of rows with a winder marker.
func CountWinders(items []LineItem) int {
	n := 0
	for _, item := range items {
		if item.Winder == WinderSet {
			n++
		}
	}
	return n
}

// CountMotors returns the number of rows with a motor marker.
func CountMotors(items []LineItem) int {
	n := 0
	for _, item := range items {
		if item.Motor != MotorNone {
			n++
		}
	}
	return n
}

// HasMotor reports whether any row is motorised.
func HasMotor(items []LineItem) bool {
	return CountMotors(items) > 0
}

// PairedRows returns the ascending indices of rows marked as dual.
func PairedRows(items []LineItem) []int {
	var rows []int
	for i, item := range items {
		if item.Dual == DualPaired {
			rows = append(rows, i)
		}
	}
	return rows
}
