package delivery

import (
	"fmt"
	"strings"

	"deliveryquery/internal/pkg/errs"
)

// Type is the kind of delivery service ordered by the client.
type Type int

const (
	UnknownType Type = iota
	Standard
	Express
	Pickup
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		Standard:    "Standard",
		Express:     "Express",
		Pickup:      "Pickup",
	}
}

// ParseType resolves a delivery type by its name, ignoring case.
func ParseType(s string) (Type, error) {
	for _, t := range []Type{Standard, Express, Pickup} {
		if strings.EqualFold(t.String(), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%q is not a known delivery type", s))
}

func (t Type) Validate() error {
	if t <= UnknownType || t > Pickup {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid delivery type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// CargoType classifies the shipped goods. Values are compared exactly.
type CargoType string

// NewCargoType trims the value and rejects an empty classification.
func NewCargoType(s string) (CargoType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError("cargoType")
	}
	return CargoType(s), nil
}

func (c CargoType) String() string {
	return string(c)
}
