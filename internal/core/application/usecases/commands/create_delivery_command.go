package commands

import (
	"errors"
	"time"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"
	"deliveryquery/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliveryCommand registers a delivery record so it shows up in reports.
//
// Example:
//
//	client, _ := delivery.NewClient("client-42", "Acme Ltd")
//	direction, _ := delivery.NewDirection(kyiv, lviv)
//	loading, _ := kernel.NewPeriod(loadStart, loadEnd)
//
//	cmd, err := NewCreateDeliveryCommand(kernel.NewUUID(), client, direction,
//	    "Electronics", delivery.Express, delivery.Created, loading, kernel.Period{})
//	if err != nil {
//	    return fmt.Errorf("invalid delivery: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID    kernel.UUID
	client        delivery.Client
	direction     delivery.Direction
	cargoType     delivery.CargoType
	deliveryType  delivery.Type
	status        delivery.Status
	loadingPeriod kernel.Period
	arrivalPeriod kernel.Period

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand validates every argument and reports all failures
// together. A zero kernel.Period is accepted for either window and stored as
// a window with both sides unset.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	client delivery.Client,
	direction delivery.Direction,
	cargoType string,
	deliveryType delivery.Type,
	status delivery.Status,
	loadingPeriod kernel.Period,
	arrivalPeriod kernel.Period,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setClient(client),
		cmd.setDirection(direction),
		cmd.setCargoType(cargoType),
		cmd.setDeliveryType(deliveryType),
		cmd.setStatus(status),
		cmd.setLoadingPeriod(loadingPeriod),
		cmd.setArrivalPeriod(arrivalPeriod),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c CreateDeliveryCommand) Client() delivery.Client {
	return c.client
}

func (c CreateDeliveryCommand) Direction() delivery.Direction {
	return c.direction
}

func (c CreateDeliveryCommand) CargoType() delivery.CargoType {
	return c.cargoType
}

func (c CreateDeliveryCommand) DeliveryType() delivery.Type {
	return c.deliveryType
}

func (c CreateDeliveryCommand) Status() delivery.Status {
	return c.status
}

func (c CreateDeliveryCommand) LoadingPeriod() kernel.Period {
	return c.loadingPeriod
}

func (c CreateDeliveryCommand) ArrivalPeriod() kernel.Period {
	return c.arrivalPeriod
}

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setClient(client delivery.Client) error {
	if err := client.Validate(); err != nil {
		return err
	}

	c.client = client
	return nil
}

func (c *CreateDeliveryCommand) setDirection(direction delivery.Direction) error {
	if err := direction.Validate(); err != nil {
		return err
	}

	c.direction = direction
	return nil
}

func (c *CreateDeliveryCommand) setCargoType(cargoType string) error {
	ct, err := delivery.NewCargoType(cargoType)
	if err != nil {
		return err
	}

	c.cargoType = ct
	return nil
}

func (c *CreateDeliveryCommand) setDeliveryType(deliveryType delivery.Type) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}

	c.deliveryType = deliveryType
	return nil
}

func (c *CreateDeliveryCommand) setStatus(status delivery.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *CreateDeliveryCommand) setLoadingPeriod(period kernel.Period) error {
	p, err := orUnsetPeriod(period)
	if err != nil {
		return err
	}

	c.loadingPeriod = p
	return nil
}

func (c *CreateDeliveryCommand) setArrivalPeriod(period kernel.Period) error {
	p, err := orUnsetPeriod(period)
	if err != nil {
		return err
	}

	c.arrivalPeriod = p
	return nil
}

// orUnsetPeriod replaces a zero Period with a constructed one that has both
// sides unset.
func orUnsetPeriod(period kernel.Period) (kernel.Period, error) {
	if period.Validate() == nil {
		return period, nil
	}
	return kernel.NewPeriod(time.Time{}, time.Time{})
}
