package queries

import (
	"context"

	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
)

// GetOrderedDeliveriesQueryHandler lists all deliveries in status order.
type GetOrderedDeliveriesQueryHandler struct {
	repository ports.DeliveryRepository
	service    services.DeliveryQueryService
}

func NewGetOrderedDeliveriesQueryHandler(repository ports.DeliveryRepository) GetOrderedDeliveriesQueryHandler {
	return GetOrderedDeliveriesQueryHandler{
		repository: repository,
		service:    services.NewDeliveryQueryService(),
	}
}

func (h GetOrderedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderedDeliveriesQuery,
) ([]services.DeliveryShortInfo, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries, err := h.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return services.ToShortInfos(h.service.OrderByStatusThenByStartLoading(deliveries)), nil
}
