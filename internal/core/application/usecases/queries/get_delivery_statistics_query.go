package queries

import (
	"errors"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/pkg/guard"
)

var (
	ErrGetDeliveryStatisticsQueryIsNotConstructed = errors.New(
		"GetDeliveryStatisticsQuery must be created via NewGetDeliveryStatisticsQuery constructor",
	)
)

// GetDeliveryStatisticsQuery asks for aggregate counters over all deliveries.
type GetDeliveryStatisticsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryStatisticsQuery() GetDeliveryStatisticsQuery {
	return GetDeliveryStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryStatisticsQueryIsNotConstructed)
}

// GetDeliveryStatisticsQueryResponse holds the counters. ByStatus only has
// entries for statuses that occur; its values sum to Total.
type GetDeliveryStatisticsQueryResponse struct {
	Total            int
	ByStatus         map[delivery.Status]int
	UniqueCargoTypes int
	Paid             int
	Active           int
}
