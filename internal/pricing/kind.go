package pricing

import "fmt"

// Kind is a priced accessory category.
type Kind string

const (
	KindWinder  Kind = "winder"
	KindMotor   Kind = "motor"
	KindRemote  Kind = "remote"
	KindCharger Kind = "charger"
	KindCord    Kind = "cord"
	KindDual    Kind = "dual"
)

// DriveKinds are the five kinds summed into the drive accessories total,
// in display order.
var DriveKinds = []Kind{KindWinder, KindMotor, KindRemote, KindCharger, KindCord}

// AllKinds lists every priced kind.
var AllKinds = []Kind{KindWinder, KindMotor, KindRemote, KindCharger, KindCord, KindDual}

// ParseKind converts a kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Label returns the human readable name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindWinder:
		return "HD Winder"
	case KindMotor:
		return "Motor"
	case KindRemote:
		return "Remote"
	case KindCharger:
		return "Charger"
	case KindCord:
		return "3m Cord"
	case KindDual:
		return "Dual Bracket"
	default:
		return string(k)
	}
}
