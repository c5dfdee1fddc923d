package mocks

import (
	"WebFood-API/entities"
	"context"

	"github.com/stretchr/testify/mock"
)

type FoodRepository struct {
	mock.Mock
}

func (m *FoodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *FoodRepository) GetFoodByID(ctx context.Context, id uint) (*entities.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Food), args.Error(1)
}

func (m *FoodRepository) GetFoods(ctx context.Context, categoryID *uint) ([]*entities.Food, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Food), args.Error(1)
}

func (m *FoodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *FoodRepository) UpdateFoodImage(ctx context.Context, id uint, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

func (m *FoodRepository) DeleteFood(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FoodRepository) CategoryExists(ctx context.Context, categoryID uint) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *FoodRepository) IsFoodOrdered(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
