package queries

import (
	"errors"
	"fmt"
	"strings"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/guard"
	"deliveryquery/internal/pkg/paging"
)

var (
	ErrGetDeliveriesPageQueryIsNotConstructed = errors.New(
		"GetDeliveriesPageQuery must be created via NewGetDeliveriesPageQuery constructor",
	)
)

// StatusFilter selects the population a page is cut from.
type StatusFilter int

const (
	AllDeliveries StatusFilter = iota
	PaidDeliveries
	ActiveDeliveries
)

func getStatusFilterStrings() map[StatusFilter]string {
	return map[StatusFilter]string{
		AllDeliveries:    "all",
		PaidDeliveries:   "paid",
		ActiveDeliveries: "active",
	}
}

// ParseStatusFilter resolves a filter by name, ignoring case. An empty string
// selects AllDeliveries.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllDeliveries, nil
	}
	for f, name := range getStatusFilterStrings() {
		if strings.EqualFold(name, s) {
			return f, nil
		}
	}
	return AllDeliveries, errs.NewValueIsInvalidErrorWithCause(
		"statusFilter", fmt.Errorf("%q is not one of all, paid, active", s))
}

func (f StatusFilter) Validate() error {
	if _, ok := getStatusFilterStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("statusFilter", fmt.Errorf("%d is not a valid filter", f))
	}
	return nil
}

func (f StatusFilter) String() string {
	return getStatusFilterStrings()[f]
}

// predicate returns the delivery filter, or nil for AllDeliveries.
func (f StatusFilter) predicate() func(*delivery.Delivery) bool {
	switch f {
	case PaidDeliveries:
		return services.IsPaid
	case ActiveDeliveries:
		return services.IsNotFinished
	default:
		return nil
	}
}

// SortOrder selects the key a page is sorted by.
type SortOrder int

const (
	// SortByStatusThenLoading orders by declared status order, then loading start.
	SortByStatusThenLoading SortOrder = iota
	// SortByLoadingStart orders by loading start only.
	SortByLoadingStart
)

func getSortOrderStrings() map[SortOrder]string {
	return map[SortOrder]string{
		SortByStatusThenLoading: "status",
		SortByLoadingStart:      "loading",
	}
}

// ParseSortOrder resolves a sort order by name, ignoring case. An empty string
// selects SortByStatusThenLoading.
func ParseSortOrder(s string) (SortOrder, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortByStatusThenLoading, nil
	}
	for o, name := range getSortOrderStrings() {
		if strings.EqualFold(name, s) {
			return o, nil
		}
	}
	return SortByStatusThenLoading, errs.NewValueIsInvalidErrorWithCause(
		"sortOrder", fmt.Errorf("%q is not one of status, loading", s))
}

func (o SortOrder) Validate() error {
	if _, ok := getSortOrderStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sortOrder", fmt.Errorf("%d is not a valid sort order", o))
	}
	return nil
}

func (o SortOrder) String() string {
	return getSortOrderStrings()[o]
}

// GetDeliveriesPageQuery asks for one page of deliveries.
//
// Example:
//
//	query, err := NewGetDeliveriesPageQuery(PaidDeliveries, SortByLoadingStart, 20, 1)
//	if err != nil {
//	    return err // errors.Is(err, errs.ErrInvalidArgument) for bad page arguments
//	}
//	page, err := handler.Handle(ctx, query)
type GetDeliveriesPageQuery struct {
	statusFilter StatusFilter
	sortOrder    SortOrder
	countOnPage  int
	pageNumber   int

	guard guard.ConstructorGuard
}

// NewGetDeliveriesPageQuery creates the query. pageNumber is 1-based and both
// page arguments must be at least 1.
func NewGetDeliveriesPageQuery(
	statusFilter StatusFilter,
	sortOrder SortOrder,
	countOnPage int,
	pageNumber int,
) (GetDeliveriesPageQuery, error) {
	if err := errors.Join(
		statusFilter.Validate(),
		sortOrder.Validate(),
		paging.Validate(countOnPage, pageNumber),
	); err != nil {
		return GetDeliveriesPageQuery{}, err
	}

	return GetDeliveriesPageQuery{
		statusFilter: statusFilter,
		sortOrder:    sortOrder,
		countOnPage:  countOnPage,
		pageNumber:   pageNumber,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesPageQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesPageQueryIsNotConstructed)
}

func (q GetDeliveriesPageQuery) StatusFilter() StatusFilter {
	return q.statusFilter
}

func (q GetDeliveriesPageQuery) SortOrder() SortOrder {
	return q.sortOrder
}

func (q GetDeliveriesPageQuery) CountOnPage() int {
	return q.countOnPage
}

func (q GetDeliveriesPageQuery) PageNumber() int {
	return q.pageNumber
}

// GetDeliveriesPageQueryResponse is one page plus the metadata needed to
// request the others. Total counts the filtered population.
type GetDeliveriesPageQueryResponse struct {
	Items       []services.DeliveryShortInfo
	Total       int
	PageNumber  int
	CountOnPage int
	PageCount   int
}
