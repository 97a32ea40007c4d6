package quote

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of an item fixture.
type File struct {
	Product string     `yaml:"product,omitempty"`
	Items   []LineItem `yaml:"items"`
}

// LoadItems reads a YAML item fixture from path.
func LoadItems(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}
	f, err := ParseItems(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseItems decodes a YAML item fixture. Chain values must be positive.
func ParseItems(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse items: %w", err)
	}
	if err := ValidateItems(f.Items); err != nil {
		return nil, err
	}
	return &f, nil
}

// ValidateItems rejects non-positive chain lengths and unknown markers.
func ValidateItems(items []LineItem) error {
	for i, item := range items {
		if item.Chain != nil && *item.Chain <= 0 {
			return fmt.Errorf("item %d: chain must be a positive integer, got %d", i+1, *item.Chain)
		}
		switch item.Dual {
		case DualNone, DualPaired:
		default:
			return fmt.Errorf("item %d: unknown dual marker %q", i+1, item.Dual)
		}
		switch item.Winder {
		case WinderNone, WinderSet:
		default:
			return fmt.Errorf("item %d: unknown winder marker %q", i+1, item.Winder)
		}
		switch item.Motor {
		case MotorNone, MotorSet:
		default:
			return fmt.Errorf("item %d: unknown motor marker %q", i+1, item.Motor)
		}
	}
	return nil
}

// NewStoreFromFile builds a store from a fixture, falling back to
// defaultProduct when the fixture does not name one.
func NewStoreFromFile(f *File, defaultProduct string) *Store {
	product := f.Product
	if product == "" {
		product = defaultProduct
	}
	return NewStore(product, f.Items)
}
