package queries

import (
	"context"
	"time"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/core/ports"
	"deliveryquery/internal/pkg/paging"
)

// GetDeliveriesPageQueryHandler filters, sorts and pages the delivery snapshot.
type GetDeliveriesPageQueryHandler struct {
	repository ports.DeliveryRepository
}

func NewGetDeliveriesPageQueryHandler(repository ports.DeliveryRepository) GetDeliveriesPageQueryHandler {
	return GetDeliveriesPageQueryHandler{repository: repository}
}

// Handle returns the requested page. A page past the end has no items but
// still reports the total.
func (h GetDeliveriesPageQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesPageQuery,
) (GetDeliveriesPageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveriesPageQueryResponse{}, err
	}

	deliveries, err := h.repository.GetAll(ctx)
	if err != nil {
		return GetDeliveriesPageQueryResponse{}, err
	}

	filter := query.StatusFilter().predicate()
	opts := []paging.Option{
		paging.WithCountOnPage(query.CountOnPage()),
		paging.WithPageNumber(query.PageNumber()),
	}

	var page []*delivery.Delivery
	switch query.SortOrder() {
	case SortByLoadingStart:
		page, err = paging.PagingFunc(deliveries, (*delivery.Delivery).StartLoading, time.Time.Compare, filter, opts...)
	default:
		page, err = paging.PagingFunc(deliveries, identity, services.CompareByStatusThenStartLoading, filter, opts...)
	}
	if err != nil {
		return GetDeliveriesPageQueryResponse{}, err
	}

	total := paging.Total(deliveries, filter)
	return GetDeliveriesPageQueryResponse{
		Items:       services.ToShortInfos(page),
		Total:       total,
		PageNumber:  query.PageNumber(),
		CountOnPage: query.CountOnPage(),
		PageCount:   paging.PageCount(total, query.CountOnPage()),
	}, nil
}

func identity(d *delivery.Delivery) *delivery.Delivery {
	return d
}
