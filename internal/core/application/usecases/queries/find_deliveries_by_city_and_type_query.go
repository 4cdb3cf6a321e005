package queries

import (
	"errors"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/pkg/guard"
)

var (
	ErrFindDeliveriesByCityAndTypeQueryIsNotConstructed = errors.New(
		"FindDeliveriesByCityAndTypeQuery must be created via NewFindDeliveriesByCityAndTypeQuery constructor",
	)
)

// FindDeliveriesByCityAndTypeQuery searches deliveries leaving a city with a
// given delivery type. At most services.MaxDeliveriesByCityAndType results are
// returned.
type FindDeliveriesByCityAndTypeQuery struct {
	city         string
	deliveryType delivery.Type

	guard guard.ConstructorGuard
}

// NewFindDeliveriesByCityAndTypeQuery creates the query. The type must be a
// valid delivery.Type. The city is kept as given because matching is exact; a
// city no delivery starts in, blank included, yields an empty result.
func NewFindDeliveriesByCityAndTypeQuery(
	city string,
	deliveryType delivery.Type,
) (FindDeliveriesByCityAndTypeQuery, error) {
	if err := deliveryType.Validate(); err != nil {
		return FindDeliveriesByCityAndTypeQuery{}, err
	}

	return FindDeliveriesByCityAndTypeQuery{
		city:         city,
		deliveryType: deliveryType,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindDeliveriesByCityAndTypeQuery) Validate() error {
	return q.guard.Validate(ErrFindDeliveriesByCityAndTypeQueryIsNotConstructed)
}

func (q FindDeliveriesByCityAndTypeQuery) City() string {
	return q.city
}

func (q FindDeliveriesByCityAndTypeQuery) DeliveryType() delivery.Type {
	return q.deliveryType
}
