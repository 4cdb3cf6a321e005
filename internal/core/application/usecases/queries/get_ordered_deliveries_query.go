package queries

import (
	"errors"

	"deliveryquery/internal/pkg/guard"
)

var (
	ErrGetOrderedDeliveriesQueryIsNotConstructed = errors.New(
		"GetOrderedDeliveriesQuery must be created via NewGetOrderedDeliveriesQuery constructor",
	)
)

// GetOrderedDeliveriesQuery asks for every delivery ordered by status and then
// by loading start.
type GetOrderedDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOrderedDeliveriesQuery() GetOrderedDeliveriesQuery {
	return GetOrderedDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderedDeliveriesQueryIsNotConstructed)
}
