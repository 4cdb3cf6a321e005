// Package services provides the stateless domain services of the delivery
// reporting system.
//
// The package includes:
//   - DeliveryQueryService: filtering, projection, ordering, grouping and route
//     aggregation over a snapshot of deliveries
//   - DeliveryShortInfo and AverageGapsInfo: the result shapes it produces
//
// Every operation is a pure function of its arguments. Input slices are never
// reordered or modified and every call returns freshly allocated results.
package services
