package queries_test

import (
	"context"

	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetAll(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if ds := args.Get(0); ds != nil {
		return ds.([]*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRepository(deliveries ...*delivery.Delivery) *MockDeliveryRepository {
	repo := new(MockDeliveryRepository)
	repo.On("GetAll", mock.Anything).Return(deliveries, nil)
	return repo
}
