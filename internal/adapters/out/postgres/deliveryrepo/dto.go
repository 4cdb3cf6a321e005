// Package deliveryrepo persists delivery aggregates with GORM and maps them
// between their domain and table representations.
package deliveryrepo

import (
	"errors"
	"time"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the row stored for one delivery. Seq records insertion order,
// which is the order GetAll returns rows in.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq         int64      `gorm:"autoIncrement;uniqueIndex"`
	ClientID    string     `gorm:"not null;index"`
	ClientName  string     `gorm:"not null"`
	Origin      AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	CargoType   string     `gorm:"not null"`
	Type        int        `gorm:"type:smallint;not null"`
	Status      int        `gorm:"type:smallint;not null"`
	Loading     PeriodDTO  `gorm:"embedded;embeddedPrefix:loading_"`
	Arrival     PeriodDTO  `gorm:"embedded;embeddedPrefix:arrival_"`
}

// TableName overrides GORM's default naming.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO is an embedded city and street pair.
type AddressDTO struct {
	City   string `gorm:"not null"`
	Street string `gorm:"not null;default:''"`
}

// PeriodDTO is an embedded time window. NULL marks an unset side.
type PeriodDTO struct {
	Start *time.Time `gorm:"type:timestamptz"`
	End   *time.Time `gorm:"type:timestamptz"`
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          d.ID().Bytes(),
		ClientID:    d.ClientID(),
		ClientName:  d.ClientName(),
		Origin:      addressFromDomain(d.Origin()),
		Destination: addressFromDomain(d.Destination()),
		CargoType:   d.CargoType().String(),
		Type:        int(d.Type()),
		Status:      int(d.Status()),
		Loading:     periodFromDomain(d.LoadingPeriod()),
		Arrival:     periodFromDomain(d.ArrivalPeriod()),
	}
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{City: a.City(), Street: a.Street()}
}

func periodFromDomain(p kernel.Period) PeriodDTO {
	return PeriodDTO{Start: p.StartPtr(), End: p.EndPtr()}
}

// toDomain rebuilds the aggregate through the domain constructors, so a row
// that no longer satisfies the invariants is reported instead of loaded.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	client, clientErr := delivery.NewClient(dto.ClientID, dto.ClientName)
	origin, originErr := kernel.NewAddress(dto.Origin.City, dto.Origin.Street)
	destination, destinationErr := kernel.NewAddress(dto.Destination.City, dto.Destination.Street)
	cargoType, cargoErr := delivery.NewCargoType(dto.CargoType)
	loading, loadingErr := kernel.NewPeriodFromPointers(dto.Loading.Start, dto.Loading.End)
	arrival, arrivalErr := kernel.NewPeriodFromPointers(dto.Arrival.Start, dto.Arrival.End)
	if err = errors.Join(clientErr, originErr, destinationErr, cargoErr, loadingErr, arrivalErr); err != nil {
		return nil, err
	}

	direction, err := delivery.NewDirection(origin, destination)
	if err != nil {
		return nil, err
	}

	return delivery.NewDelivery(
		id,
		client,
		direction,
		cargoType,
		delivery.Type(dto.Type),
		delivery.Status(dto.Status),
		loading,
		arrival,
	)
}
