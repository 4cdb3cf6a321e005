package queries

import (
	"context"

	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
)

// GetClientDeliveriesQueryHandler projects the deliveries of one client.
type GetClientDeliveriesQueryHandler struct {
	repository ports.DeliveryRepository
	service    services.DeliveryQueryService
}

func NewGetClientDeliveriesQueryHandler(repository ports.DeliveryRepository) GetClientDeliveriesQueryHandler {
	return GetClientDeliveriesQueryHandler{
		repository: repository,
		service:    services.NewDeliveryQueryService(),
	}
}

// Handle returns the client's deliveries in repository order. An unknown
// client yields an empty slice, not an error.
func (h GetClientDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetClientDeliveriesQuery,
) ([]services.DeliveryShortInfo, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries, err := h.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return h.service.DeliveryInfosByClient(deliveries, query.ClientID()), nil
}
