package delivery

import (
	"errors"
	"time"

	"deliveryquery/internal/core/domain/model/kernel"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is a shipment record: who ordered it, where it goes, what is
// carried, its lifecycle status, and the loading and arrival windows.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier
//   - Client, direction, loading and arrival periods must be constructed values
//   - Status and type must be valid enumeration values
//   - Cargo type must not be empty
//
// Delivery has no mutators. Every field is fixed at construction.
type Delivery struct {
	id            kernel.UUID
	client        Client
	direction     Direction
	cargoType     CargoType
	deliveryType  Type
	status        Status
	loadingPeriod kernel.Period
	arrivalPeriod kernel.Period

	isConstructed bool
}

// NewDelivery creates a validated Delivery. All validation failures are
// reported together.
//
// Example:
//
//	origin, _ := kernel.NewAddress("Kyiv", "")
//	destination, _ := kernel.NewAddress("Lviv", "")
//	direction, _ := delivery.NewDirection(origin, destination)
//	client, _ := delivery.NewClient("client-42", "Acme Ltd")
//	loading, _ := kernel.NewPeriod(loadStart, loadEnd)
//	arrival, _ := kernel.NewPeriod(arriveStart, arriveEnd)
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), client, direction,
//	    "Electronics", delivery.Express, delivery.Confirmed, loading, arrival)
func NewDelivery(
	id kernel.UUID,
	client Client,
	direction Direction,
	cargoType CargoType,
	deliveryType Type,
	status Status,
	loadingPeriod kernel.Period,
	arrivalPeriod kernel.Period,
) (*Delivery, error) {
	d := &Delivery{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setClient(client),
		d.setDirection(direction),
		d.setCargoType(cargoType),
		d.setType(deliveryType),
		d.setStatus(status),
		d.setLoadingPeriod(loadingPeriod),
		d.setArrivalPeriod(arrivalPeriod),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was created via NewDelivery.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) Client() Client {
	return d.client
}

func (d *Delivery) ClientID() string {
	return d.client.ID()
}

func (d *Delivery) ClientName() string {
	return d.client.Name()
}

func (d *Delivery) Direction() Direction {
	return d.direction
}

func (d *Delivery) Origin() kernel.Address {
	return d.direction.Origin()
}

func (d *Delivery) Destination() kernel.Address {
	return d.direction.Destination()
}

func (d *Delivery) CargoType() CargoType {
	return d.cargoType
}

func (d *Delivery) Type() Type {
	return d.deliveryType
}

func (d *Delivery) Status() Status {
	return d.status
}

func (d *Delivery) LoadingPeriod() kernel.Period {
	return d.loadingPeriod
}

func (d *Delivery) ArrivalPeriod() kernel.Period {
	return d.arrivalPeriod
}

// StartLoading is the start of the loading window, or the zero time when unset.
func (d *Delivery) StartLoading() time.Time {
	return d.loadingPeriod.Start()
}

// EndArrival is the end of the arrival window, or the zero time when unset.
func (d *Delivery) EndArrival() time.Time {
	return d.arrivalPeriod.End()
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setClient(client Client) error {
	if err := client.Validate(); err != nil {
		return err
	}
	d.client = client
	return nil
}

func (d *Delivery) setDirection(direction Direction) error {
	if err := direction.Validate(); err != nil {
		return err
	}
	d.direction = direction
	return nil
}

func (d *Delivery) setCargoType(cargoType CargoType) error {
	normalized, err := NewCargoType(string(cargoType))
	if err != nil {
		return err
	}
	d.cargoType = normalized
	return nil
}

func (d *Delivery) setType(deliveryType Type) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	d.deliveryType = deliveryType
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setLoadingPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}
	d.loadingPeriod = period
	return nil
}

func (d *Delivery) setArrivalPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}
	d.arrivalPeriod = period
	return nil
}
