package services

import (
	"slices"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/pkg/paging"
)

// MaxDeliveriesByCityAndType caps the result of DeliveriesByCityAndType.
const MaxDeliveriesByCityAndType = 10

// DeliveryQueryService answers reporting questions over a snapshot of deliveries.
//
// Business rules:
//   - A delivery is paid when its status is exactly Confirmed
//   - A delivery is finished when its status is exactly Done or Canceled
//   - Ordering by status follows the declared order of delivery.Status
//   - A delivery with an unset loading start or arrival end contributes a gap of
//     zero minutes to its route average and is still counted in the divisor
//
// Example usage:
//
//	svc := services.NewDeliveryQueryService()
//	paid := svc.Paid(deliveries)
//	byStatus := svc.CountsByDeliveryStatus(deliveries)
//	gaps := svc.AverageTravelTimePerDirection(deliveries)
type DeliveryQueryService struct{}

// NewDeliveryQueryService creates a new DeliveryQueryService instance.
func NewDeliveryQueryService() DeliveryQueryService {
	return DeliveryQueryService{}
}

// IsPaid reports whether d is paid. It is the predicate behind Paid.
func IsPaid(d *delivery.Delivery) bool {
	return d.Status().IsPaid()
}

// IsNotFinished reports whether d is still being processed. It is the
// predicate behind NotFinished.
func IsNotFinished(d *delivery.Delivery) bool {
	return !d.Status().IsFinished()
}

// Paid returns the deliveries whose status is Confirmed.
func (DeliveryQueryService) Paid(deliveries []*delivery.Delivery) []*delivery.Delivery {
	return paging.Filter(deliveries, IsPaid)
}

// NotFinished returns the deliveries whose status is neither Canceled nor Done.
func (DeliveryQueryService) NotFinished(deliveries []*delivery.Delivery) []*delivery.Delivery {
	return paging.Filter(deliveries, IsNotFinished)
}

// DeliveryInfosByClient projects the deliveries of one client. The client
// identifier is matched exactly; an unknown client yields an empty slice.
func (DeliveryQueryService) DeliveryInfosByClient(
	deliveries []*delivery.Delivery,
	clientID string,
) []DeliveryShortInfo {
	return ToShortInfos(paging.Filter(deliveries, func(d *delivery.Delivery) bool {
		return d.ClientID() == clientID
	}))
}

// DeliveriesByCityAndType returns, in input order, at most
// MaxDeliveriesByCityAndType deliveries that start in cityName and have the
// given type. The cap cannot be overridden.
func (DeliveryQueryService) DeliveriesByCityAndType(
	deliveries []*delivery.Delivery,
	cityName string,
	deliveryType delivery.Type,
) []*delivery.Delivery {
	result := make([]*delivery.Delivery, 0, MaxDeliveriesByCityAndType)
	for _, d := range deliveries {
		if len(result) == MaxDeliveriesByCityAndType {
			break
		}
		if d.Origin().City() == cityName && d.Type() == deliveryType {
			result = append(result, d)
		}
	}
	return result
}

// CompareByStatusThenStartLoading orders by status (declared order) and then by
// loading start ascending. An unset loading start sorts first.
func CompareByStatusThenStartLoading(a, b *delivery.Delivery) int {
	if a.Status() != b.Status() {
		if a.Status() < b.Status() {
			return -1
		}
		return 1
	}
	return a.StartLoading().Compare(b.StartLoading())
}

// OrderByStatusThenByStartLoading returns a stably sorted copy of deliveries
// ordered by CompareByStatusThenStartLoading.
func (DeliveryQueryService) OrderByStatusThenByStartLoading(deliveries []*delivery.Delivery) []*delivery.Delivery {
	ordered := slices.Clone(deliveries)
	if ordered == nil {
		ordered = make([]*delivery.Delivery, 0)
	}
	slices.SortStableFunc(ordered, CompareByStatusThenStartLoading)
	return ordered
}

// CountUniqCargoTypes counts distinct cargo types.
func (DeliveryQueryService) CountUniqCargoTypes(deliveries []*delivery.Delivery) int {
	seen := make(map[delivery.CargoType]struct{}, len(deliveries))
	for _, d := range deliveries {
		seen[d.CargoType()] = struct{}{}
	}
	return len(seen)
}

// CountsByDeliveryStatus maps each status present in deliveries to the number of
// deliveries in it. Absent statuses have no entry.
func (DeliveryQueryService) CountsByDeliveryStatus(deliveries []*delivery.Delivery) map[delivery.Status]int {
	counts := make(map[delivery.Status]int)
	for _, d := range deliveries {
		counts[d.Status()]++
	}
	return counts
}

// TravelGapMinutes is the time from loading start to arrival end in minutes,
// or zero when either timestamp is unset.
func TravelGapMinutes(d *delivery.Delivery) float64 {
	if !d.LoadingPeriod().HasStart() || !d.ArrivalPeriod().HasEnd() {
		return 0
	}
	return d.EndArrival().Sub(d.StartLoading()).Minutes()
}

// AverageTravelTimePerDirection groups deliveries by route (origin city,
// destination city) and averages TravelGapMinutes per group. Streets are
// ignored. Routes appear in order of first occurrence.
func (DeliveryQueryService) AverageTravelTimePerDirection(deliveries []*delivery.Delivery) []AverageGapsInfo {
	type accumulator struct {
		route delivery.Route
		sum   float64
		count int
	}

	index := make(map[delivery.Route]int)
	groups := make([]accumulator, 0)
	for _, d := range deliveries {
		route := d.Direction().Route()
		i, ok := index[route]
		if !ok {
			i = len(groups)
			index[route] = i
			groups = append(groups, accumulator{route: route})
		}
		groups[i].sum += TravelGapMinutes(d)
		groups[i].count++
	}

	result := make([]AverageGapsInfo, 0, len(groups))
	for _, g := range groups {
		result = append(result, AverageGapsInfo{
			StartCity:  g.route.From,
			EndCity:    g.route.To,
			AverageGap: g.sum / float64(g.count),
			Deliveries: g.count,
		})
	}
	return result
}
