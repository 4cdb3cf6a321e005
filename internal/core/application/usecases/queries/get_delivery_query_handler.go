package queries

import (
	"context"

	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
)

// GetDeliveryQueryHandler loads one delivery through the repository.
type GetDeliveryQueryHandler struct {
	repository ports.DeliveryRepository
}

func NewGetDeliveryQueryHandler(repository ports.DeliveryRepository) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{repository: repository}
}

// Handle returns an error wrapping errs.ErrObjectNotFound for an unknown identifier.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (services.DeliveryShortInfo, error) {
	if err := query.Validate(); err != nil {
		return services.DeliveryShortInfo{}, err
	}

	d, err := h.repository.Get(ctx, query.DeliveryID())
	if err != nil {
		return services.DeliveryShortInfo{}, err
	}

	return services.ToShortInfo(d), nil
}
