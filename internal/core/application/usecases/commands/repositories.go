// Package commands contains the operations that change stored state. Each
// command is validated on construction and persisted inside a unit of work.
package commands

import (
	"context"

	"deliveryquery/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory gives access to the delivery repository inside a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// DeliveryUoW manages transactions for delivery writes.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   err := uow.DeliveryRepository().Add(ctx, d)
	//   ...
	//   err = uow.Commit(ctx)
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates a DeliveryUoW per command.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
