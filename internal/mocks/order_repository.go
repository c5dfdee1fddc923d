package mocks

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"context"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepository) GetOrderByID(ctx context.Context, id uint) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, uint) *entities.Order); ok {
		return fn(ctx, id), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *OrderRepository) GetOrders(ctx context.Context, filter domain.OrderFilter) ([]*entities.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(ctx context.Context, id uint, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) UpdateOrderFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) DeleteOrder(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) OrderExists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) UserExists(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepository) GetPromotionByID(ctx context.Context, id uint) (*entities.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Promotion), args.Error(1)
}

func (m *OrderRepository) CountFoods(ctx context.Context, foodIDs []uint) (int64, error) {
	args := m.Called(ctx, foodIDs)
	return args.Get(0).(int64), args.Error(1)
}
