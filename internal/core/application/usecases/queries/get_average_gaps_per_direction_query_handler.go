package queries

import (
	"context"

	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
)

// GetAverageGapsPerDirectionQueryHandler aggregates travel time per route.
type GetAverageGapsPerDirectionQueryHandler struct {
	repository ports.DeliveryRepository
	service    services.DeliveryQueryService
}

func NewGetAverageGapsPerDirectionQueryHandler(
	repository ports.DeliveryRepository,
) GetAverageGapsPerDirectionQueryHandler {
	return GetAverageGapsPerDirectionQueryHandler{
		repository: repository,
		service:    services.NewDeliveryQueryService(),
	}
}

// Handle returns one entry per route in order of first appearance.
func (h GetAverageGapsPerDirectionQueryHandler) Handle(
	ctx context.Context,
	query GetAverageGapsPerDirectionQuery,
) ([]services.AverageGapsInfo, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries, err := h.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return h.service.AverageTravelTimePerDirection(deliveries), nil
}
