// Package delivery provides the Delivery aggregate consumed by the reporting
// layer, together with the value objects that describe it.
//
// The package includes:
//   - Delivery: an immutable shipment record
//   - Status: the lifecycle state, whose declared order is the reporting sort order
//   - Type: the delivery type (standard, express, pickup)
//   - CargoType: a free-form cargo classification compared by value
//   - Client: the owner of the shipment (identifier and display name)
//   - Direction: the origin/destination pair, used as the route grouping key
//
// Deliveries are produced and persisted elsewhere. This package only validates
// records on construction and exposes read accessors; there are no setters, so a
// *Delivery can be shared between result slices without risk of corrupting the
// source collection.
package delivery
