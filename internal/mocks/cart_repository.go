package mocks

import (
	"WebFood-API/entities"
	"context"

	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) GetCartItems(ctx context.Context, userID uint) ([]*entities.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.CartItem), args.Error(1)
}

func (m *CartRepository) GetCartItemByFood(ctx context.Context, userID uint, foodID uint) (*entities.CartItem, error) {
	args := m.Called(ctx, userID, foodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CartItem), args.Error(1)
}

func (m *CartRepository) UpsertCartItem(ctx context.Context, item *entities.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartRepository) UpdateQuantity(ctx context.Context, userID uint, itemID uint, quantity int) (int64, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartRepository) DeleteCartItem(ctx context.Context, userID uint, itemID uint) (int64, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CartRepository) ClearCart(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *CartRepository) FoodExists(ctx context.Context, foodID uint) (bool, error) {
	args := m.Called(ctx, foodID)
	return args.Bool(0), args.Error(1)
}
