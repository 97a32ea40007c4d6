package quote

import "sync"

// Store owns the line items of one product on a quote along with the
// accessory cost sums last written back by the editor.
type Store struct {
	mu          sync.RWMutex
	productType string
	items       []LineItem
	costs       map[string]float64
}

// NewStore creates a store over a copy of items. A trailing sentinel row is
// appended when the last item is not already empty.
func NewStore(productType string, items []LineItem) *Store {
	return &Store{
		productType: productType,
		items:       withSentinel(CloneItems(items)),
		costs:       make(map[string]float64),
	}
}

// NewBlankStore creates a store with rows empty editable rows plus the sentinel.
func NewBlankStore(productType string, rows int) *Store {
	if rows < 0 {
		rows = 0
	}
	return &Store{
		productType: productType,
		items:       make([]LineItem, rows+1),
		costs:       make(map[string]float64),
	}
}

// ProductType returns the product the items belong to.
func (s *Store) ProductType() string {
	return s.productType
}

// Items returns a copy of all items including the sentinel row.
func (s *Store) Items() []LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return CloneItems(s.items)
}

// Item returns a copy of the item at row.
func (s *Store) Item(row int) (LineItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if row < 0 || row >= len(s.items) {
		return LineItem{}, false
	}
	return s.items[row].Clone(), true
}

// Len returns the number of rows including the sentinel.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// UpdateItemProperty sets a single field of the item at row. It returns
// false without touching anything when the row does not exist, the field
// is unknown, or value has the wrong type for the field.
func (s *Store) UpdateItemProperty(row int, field Field, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 0 || row >= len(s.items) {
		return false
	}
	item := &s.items[row]

	switch field {
	case FieldLocation:
		v, ok := value.(string)
		if !ok {
			return false
		}
		item.Location = v
	case FieldFabric:
		v, ok := value.(string)
		if !ok {
			return false
		}
		item.Fabric = v
	case FieldDual:
		v, ok := value.(DualMarker)
		if !ok {
			return false
		}
		item.Dual = v
	case FieldChain:
		v, ok := value.(*int)
		if !ok {
			return false
		}
		if v == nil {
			item.Chain = nil
		} else {
			n := *v
			item.Chain = &n
		}
	case FieldWinder:
		v, ok := value.(WinderMarker)
		if !ok {
			return false
		}
		item.Winder = v
	case FieldMotor:
		v, ok := value.(MotorMarker)
		if !ok {
			return false
		}
		item.Motor = v
	case FieldRoll:
		v, ok := value.(RollDirection)
		if !ok {
			return false
		}
		item.Roll = v
	case FieldSide:
		v, ok := value.(ControlSide)
		if !ok {
			return false
		}
		item.Side = v
	default:
		return false
	}
	return true
}

// SetAccessoryCost records the latest computed cost for an accessory kind.
func (s *Store) SetAccessoryCost(kind string, cost float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.costs[kind] = cost
}

// AccessoryCost returns the last recorded cost for kind, or zero.
func (s *Store) AccessoryCost(kind string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.costs[kind]
}

// AccessoryCosts returns a copy of every recorded accessory cost.
func (s *Store) AccessoryCosts() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dup := make(map[string]float64, len(s.costs))
	for k, v := range s.costs {
		dup[k] = v
	}
	return dup
}

// Clone returns an independent store with the same product, items and costs.
func (s *Store) Clone() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dup := &Store{
		productType: s.productType,
		items:       CloneItems(s.items),
		costs:       make(map[string]float64, len(s.costs)),
	}
	for k, v := range s.costs {
		dup.costs[k] = v
	}
	return dup
}

func withSentinel(items []LineItem) []LineItem {
	if len(items) == 0 || !items[len(items)-1].IsEmpty() {
		items = append(items, LineItem{})
	}
	return items
}
