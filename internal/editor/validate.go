package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/muurk/quotedesk/internal/quote"
)

// User-facing validation messages.
const (
	MsgDualOddCount     = "The total count of Dual Brackets (D) must be an even number. Please correct the selection."
	MsgDualNotAdjacent  = "Dual Brackets (D) must be set on adjacent items. Please check your selection."
	MsgChainNotPositive = "Only positive integers are allowed."
)

// ValidateDualSelection checks that the rows marked as dual can be split
// into adjacent pairs (i, i+1). An empty selection is valid.
//
// Examples:
//   - rows {2,3,5,6}: valid
//   - rows {2,3,5}: odd count
//   - rows {2,4}: not adjacent
func ValidateDualSelection(items []quote.LineItem) error {
	rows := quote.PairedRows(items)

	if len(rows)%2 != 0 {
		return NewValidationError(MsgDualOddCount)
	}

	for i := 0; i < len(rows); i += 2 {
		if rows[i+1] != rows[i]+1 {
			e := NewValidationError(MsgDualNotAdjacent)
			e.Row = rows[i]
			return e
		}
	}
	return nil
}

// ParseChainValue parses chain-length input. Empty input clears the value
// and yields nil. Any positive whole number is accepted, including forms
// like "4.0" or "1e2"; everything else is rejected.
func ParseChainValue(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f <= 0 || f > math.MaxInt32 || f != math.Trunc(f) {
		return nil, NewValidationError(MsgChainNotPositive)
	}
	n := int(f)
	return &n, nil
}
