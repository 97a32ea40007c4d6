package pricing

import (
	"errors"

	"github.com/muurk/quotedesk/internal/quote"
)

var (
	ErrUnknownProduct = errors.New("unknown product type")
	ErrUnknownKind    = errors.New("unknown accessory kind")
	ErrNegativeCount  = errors.New("negative accessory count")
)

// Params carries the inputs for one accessory price.
// Count is used for counted kinds. Items, when set, lets the service derive
// the count itself (dual brackets).
type Params struct {
	Count int
	Items []quote.LineItem
}

// Service prices a single accessory kind. Implementations must be
// deterministic and free of side effects.
type Service interface {
	PriceAccessory(productType string, kind Kind, params Params) (float64, error)
}

// ServiceFunc adapts a plain function to Service.
type ServiceFunc func(productType string, kind Kind, params Params) (float64, error)

// PriceAccessory calls f.
func (f ServiceFunc) PriceAccessory(productType string, kind Kind, params Params) (float64, error) {
	return f(productType, kind, params)
}
