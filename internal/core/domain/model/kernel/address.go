package kernel

import (
	"fmt"
	"strings"

	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when a zero-value Address is used.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is the origin or destination point of a delivery.
//
// Address is comparable: two addresses are equal when both city and street are
// equal, so it can be used directly inside map keys.
//
// Example:
//
//	origin, err := kernel.NewAddress("Kyiv", "Khreshchatyk 1")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(origin.City()) // Output: Kyiv
type Address struct { //nolint:recvcheck //using for validation
	city   string
	street string
	guard  guard.ConstructorGuard
}

// NewAddress creates an Address. The city is required; the street may be empty
// when only the settlement is known. Surrounding whitespace is trimmed from both.
func NewAddress(city string, street string) (Address, error) {
	addr := Address{guard: guard.NewConstructorGuard()}

	if err := addr.setCity(city); err != nil {
		return Address{}, err
	}
	addr.street = strings.TrimSpace(street)

	return addr, nil
}

// Validate checks that the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) City() string {
	return a.city
}

func (a Address) Street() string {
	return a.street
}

// IsEqual compares two addresses by value. Comparison is exact and case-sensitive.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// String returns "City" or "City, Street".
func (a Address) String() string {
	if a.street == "" {
		return a.city
	}
	return fmt.Sprintf("%s, %s", a.city, a.street)
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
