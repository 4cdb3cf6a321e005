// Package deliverytest builds Delivery fixtures for tests.
package deliverytest

import (
	"testing"
	"time"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

// Builder assembles a valid delivery with overridable fields.
// The zero time leaves the corresponding period side unset.
type Builder struct {
	id              kernel.UUID
	clientID        string
	clientName      string
	originCity      string
	originStreet    string
	destinationCity string
	cargoType       delivery.CargoType
	deliveryType    delivery.Type
	status          delivery.Status
	loadingStart    time.Time
	loadingEnd      time.Time
	arrivalStart    time.Time
	arrivalEnd      time.Time
}

// BaseTime is the default start of loading used by fresh builders.
var BaseTime = time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

func NewBuilder() *Builder {
	return &Builder{
		id:              kernel.NewUUID(),
		clientID:        "client-1",
		clientName:      "Acme",
		originCity:      "Kyiv",
		destinationCity: "Lviv",
		cargoType:       "General",
		deliveryType:    delivery.Standard,
		status:          delivery.Created,
		loadingStart:    BaseTime,
		loadingEnd:      BaseTime.Add(time.Hour),
		arrivalStart:    BaseTime.Add(5 * time.Hour),
		arrivalEnd:      BaseTime.Add(6 * time.Hour),
	}
}

func (b *Builder) WithID(id kernel.UUID) *Builder {
	b.id = id
	return b
}

func (b *Builder) WithClient(id string, name string) *Builder {
	b.clientID, b.clientName = id, name
	return b
}

func (b *Builder) WithRoute(originCity string, destinationCity string) *Builder {
	b.originCity, b.destinationCity = originCity, destinationCity
	return b
}

func (b *Builder) WithOriginStreet(street string) *Builder {
	b.originStreet = street
	return b
}

func (b *Builder) WithCargo(cargoType delivery.CargoType) *Builder {
	b.cargoType = cargoType
	return b
}

func (b *Builder) WithType(deliveryType delivery.Type) *Builder {
	b.deliveryType = deliveryType
	return b
}

func (b *Builder) WithStatus(status delivery.Status) *Builder {
	b.status = status
	return b
}

func (b *Builder) WithLoading(start time.Time, end time.Time) *Builder {
	b.loadingStart, b.loadingEnd = start, end
	return b
}

func (b *Builder) WithArrival(start time.Time, end time.Time) *Builder {
	b.arrivalStart, b.arrivalEnd = start, end
	return b
}

// Build constructs the delivery and fails the test on validation errors.
func (b *Builder) Build(t testing.TB) *delivery.Delivery {
	t.Helper()

	client, err := delivery.NewClient(b.clientID, b.clientName)
	require.NoError(t, err)
	origin, err := kernel.NewAddress(b.originCity, b.originStreet)
	require.NoError(t, err)
	destination, err := kernel.NewAddress(b.destinationCity, "")
	require.NoError(t, err)
	direction, err := delivery.NewDirection(origin, destination)
	require.NoError(t, err)
	loading, err := kernel.NewPeriod(b.loadingStart, b.loadingEnd)
	require.NoError(t, err)
	arrival, err := kernel.NewPeriod(b.arrivalStart, b.arrivalEnd)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(b.id, client, direction, b.cargoType, b.deliveryType, b.status, loading, arrival)
	require.NoError(t, err)

	return d
}
