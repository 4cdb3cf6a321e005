package queries

import (
	"context"

	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
	"deliveryquery/internal/pkg/paging"
)

// GetDeliveryStatisticsQueryHandler computes status and cargo counters.
type GetDeliveryStatisticsQueryHandler struct {
	repository ports.DeliveryRepository
	service    services.DeliveryQueryService
}

func NewGetDeliveryStatisticsQueryHandler(repository ports.DeliveryRepository) GetDeliveryStatisticsQueryHandler {
	return GetDeliveryStatisticsQueryHandler{
		repository: repository,
		service:    services.NewDeliveryQueryService(),
	}
}

func (h GetDeliveryStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryStatisticsQuery,
) (GetDeliveryStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryStatisticsQueryResponse{}, err
	}

	deliveries, err := h.repository.GetAll(ctx)
	if err != nil {
		return GetDeliveryStatisticsQueryResponse{}, err
	}

	return GetDeliveryStatisticsQueryResponse{
		Total:            len(deliveries),
		ByStatus:         h.service.CountsByDeliveryStatus(deliveries),
		UniqueCargoTypes: h.service.CountUniqCargoTypes(deliveries),
		Paid:             paging.Total(deliveries, services.IsPaid),
		Active:           paging.Total(deliveries, services.IsNotFinished),
	}, nil
}
