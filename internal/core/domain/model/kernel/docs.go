// Package kernel provides the shared value objects of the delivery domain.
//
// The package includes:
//   - UUID: a validated identifier for deliveries
//   - Address: a city/street pair used as the origin or destination of a shipment
//   - Period: a time window whose start and end may each be unset
//
// Value objects are immutable and compare by value, which lets them take part
// in map keys and grouping without any extra key encoding.
package kernel
