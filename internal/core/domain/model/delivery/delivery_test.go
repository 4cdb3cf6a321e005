package delivery_test

import (
	"testing"
	"time"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"
	"deliveryquery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	client    delivery.Client
	direction delivery.Direction
	loading   kernel.Period
	arrival   kernel.Period
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	origin, err := kernel.NewAddress("Kyiv", "Khreshchatyk 1")
	require.NoError(t, err)
	destination, err := kernel.NewAddress("Lviv", "Rynok 1")
	require.NoError(t, err)
	direction, err := delivery.NewDirection(origin, destination)
	require.NoError(t, err)
	client, err := delivery.NewClient("client-1", "Acme")
	require.NoError(t, err)

	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	loading, err := kernel.NewPeriod(start, start.Add(time.Hour))
	require.NoError(t, err)
	arrival, err := kernel.NewPeriod(start.Add(6*time.Hour), start.Add(7*time.Hour))
	require.NoError(t, err)

	return fixture{client: client, direction: direction, loading: loading, arrival: arrival}
}

func TestNewDelivery(t *testing.T) {
	f := newFixture(t)

	t.Run("should create delivery with all fields", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := delivery.NewDelivery(id, f.client, f.direction, "Furniture",
			delivery.Express, delivery.Confirmed, f.loading, f.arrival)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, "client-1", d.ClientID())
		assert.Equal(t, "Acme", d.ClientName())
		assert.Equal(t, "Kyiv", d.Origin().City())
		assert.Equal(t, "Lviv", d.Destination().City())
		assert.Equal(t, delivery.CargoType("Furniture"), d.CargoType())
		assert.Equal(t, delivery.Express, d.Type())
		assert.Equal(t, delivery.Confirmed, d.Status())
		assert.Equal(t, f.loading, d.LoadingPeriod())
		assert.Equal(t, f.arrival, d.ArrivalPeriod())
		assert.Equal(t, f.loading.Start(), d.StartLoading())
		assert.Equal(t, f.arrival.End(), d.EndArrival())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		d, err := delivery.NewDelivery(kernel.UUID{}, delivery.Client{}, f.direction, "",
			delivery.UnknownType, delivery.Unknown, f.loading, kernel.Period{})

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, delivery.ErrClientIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrPeriodIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDelivery_Validate(t *testing.T) {
	var nilDelivery *delivery.Delivery

	assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, nilDelivery.Validate())
	assert.Equal(t, delivery.ErrDeliveryIsNotConstructed, (&delivery.Delivery{}).Validate())
}

func TestDelivery_IsEqual(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()

	a, _ := delivery.NewDelivery(id, f.client, f.direction, "Food", delivery.Standard, delivery.Created, f.loading, f.arrival)
	b, _ := delivery.NewDelivery(id, f.client, f.direction, "Books", delivery.Pickup, delivery.Done, f.loading, f.arrival)
	c, _ := delivery.NewDelivery(kernel.NewUUID(), f.client, f.direction, "Food", delivery.Standard, delivery.Created, f.loading, f.arrival)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
