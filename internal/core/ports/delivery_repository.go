// Package ports defines the contracts between the delivery domain and its
// infrastructure. Application queries depend on these interfaces only.
package ports

import (
	"context"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"
)

// DeliveryRepository is the persistence contract for delivery aggregates.
// Reporting reads a full snapshot through GetAll and computes over it in memory.
type DeliveryRepository interface {
	// Add persists a new delivery. The delivery must be valid and must not
	// already exist.
	Add(ctx context.Context, d *delivery.Delivery) error

	// Get retrieves a delivery by identifier. Returns an error wrapping
	// errs.ErrObjectNotFound when nothing matches.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAll returns every stored delivery in insertion order. The result
	// is a fresh slice owned by the caller.
	GetAll(ctx context.Context) ([]*delivery.Delivery, error)
}
