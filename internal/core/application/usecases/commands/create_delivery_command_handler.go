package commands

import (
	"context"

	"deliveryquery/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler persists new deliveries inside a unit of work.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery registration failed: %w", err)
//	}
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the aggregate and adds it to the repository. The transaction
// is rolled back on any failure.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.Client(),
		cmd.Direction(),
		cmd.CargoType(),
		cmd.DeliveryType(),
		cmd.Status(),
		cmd.LoadingPeriod(),
		cmd.ArrivalPeriod(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
