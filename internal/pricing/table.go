package pricing

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/muurk/quotedesk/internal/quote"
)

//go:embed default_prices.yaml
var defaultPrices []byte

// Table is a price book of unit prices keyed by product type then kind.
type Table struct {
	Currency string                      `yaml:"currency"`
	Products map[string]map[Kind]float64 `yaml:"products"`
}

// DefaultTable returns the embedded price book.
func DefaultTable() *Table {
	t, err := ParseTable(defaultPrices)
	if err != nil {
		panic(fmt.Sprintf("embedded price table is invalid: %v", err))
	}
	return t
}

// LoadTable reads a price book from a YAML file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read price table: %w", err)
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTable decodes and validates a YAML price book.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse price table: %w", err)
	}
	if len(t.Products) == 0 {
		return nil, fmt.Errorf("price table has no products")
	}
	for product, prices := range t.Products {
		for kind, unit := range prices {
			if _, err := ParseKind(string(kind)); err != nil {
				return nil, fmt.Errorf("product %s: %w", product, err)
			}
			if unit < 0 || math.IsNaN(unit) || math.IsInf(unit, 0) {
				return nil, fmt.Errorf("product %s: invalid unit price %v for %s", product, unit, kind)
			}
		}
	}
	return &t, nil
}

// ProductTypes returns the priced product types in sorted order.
func (t *Table) ProductTypes() []string {
	names := make([]string, 0, len(t.Products))
	for name := range t.Products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnitPrice returns the unit price of kind for productType.
func (t *Table) UnitPrice(productType string, kind Kind) (float64, error) {
	prices, ok := t.Products[productType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProduct, productType)
	}
	unit, ok := prices[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q for product %q", ErrUnknownKind, kind, productType)
	}
	return unit, nil
}

// PriceAccessory implements Service.
func (t *Table) PriceAccessory(productType string, kind Kind, params Params) (float64, error) {
	unit, err := t.UnitPrice(productType, kind)
	if err != nil {
		return 0, err
	}

	count := params.Count
	if kind == KindDual && params.Items != nil {
		count = len(quote.PairedRows(params.Items))
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: %d %s", ErrNegativeCount, count, kind)
	}
	return float64(count) * unit, nil
}
