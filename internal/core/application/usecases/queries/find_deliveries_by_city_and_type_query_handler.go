package queries

import (
	"context"

	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
)

// FindDeliveriesByCityAndTypeQueryHandler runs the capped city and type search.
type FindDeliveriesByCityAndTypeQueryHandler struct {
	repository ports.DeliveryRepository
	service    services.DeliveryQueryService
}

func NewFindDeliveriesByCityAndTypeQueryHandler(
	repository ports.DeliveryRepository,
) FindDeliveriesByCityAndTypeQueryHandler {
	return FindDeliveriesByCityAndTypeQueryHandler{
		repository: repository,
		service:    services.NewDeliveryQueryService(),
	}
}

// Handle returns the first matches in repository order.
func (h FindDeliveriesByCityAndTypeQueryHandler) Handle(
	ctx context.Context,
	query FindDeliveriesByCityAndTypeQuery,
) ([]services.DeliveryShortInfo, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries, err := h.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	found := h.service.DeliveriesByCityAndType(deliveries, query.City(), query.DeliveryType())
	return services.ToShortInfos(found), nil
}
