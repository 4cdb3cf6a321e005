package delivery

import (
	"errors"
	"fmt"

	"deliveryquery/internal/core/domain/model/kernel"
	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/guard"
)

// ErrDirectionIsNotConstructed is returned when a zero-value Direction is used.
var ErrDirectionIsNotConstructed = errs.NewValueIsRequiredError("direction must be created via NewDirection constructor")

// Direction is the origin/destination address pair of a delivery.
type Direction struct {
	origin      kernel.Address
	destination kernel.Address
	guard       guard.ConstructorGuard
}

// NewDirection builds a Direction from two constructed addresses.
func NewDirection(origin kernel.Address, destination kernel.Address) (Direction, error) {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return Direction{}, err
	}

	return Direction{
		origin:      origin,
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (d Direction) Validate() error {
	return d.guard.Validate(ErrDirectionIsNotConstructed)
}

func (d Direction) Origin() kernel.Address {
	return d.origin
}

func (d Direction) Destination() kernel.Address {
	return d.destination
}

func (d Direction) IsEqual(other Direction) bool {
	return d == other
}

// Route reduces the direction to its city pair, dropping streets.
func (d Direction) Route() Route {
	return Route{From: d.origin.City(), To: d.destination.City()}
}

func (d Direction) String() string {
	return fmt.Sprintf("%s -> %s", d.origin, d.destination)
}

// Route is the origin/destination city pair deliveries are grouped by.
// It is comparable; From and To are compared independently, so A->B and B->A
// are different routes.
type Route struct {
	From string
	To   string
}

func (r Route) String() string {
	return fmt.Sprintf("%s -> %s", r.From, r.To)
}
