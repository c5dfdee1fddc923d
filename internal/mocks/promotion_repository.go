package mocks

import (
	"WebFood-API/entities"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type PromotionRepository struct {
	mock.Mock
}

func (m *PromotionRepository) AddPromotion(ctx context.Context, promotion *entities.Promotion) error {
	args := m.Called(ctx, promotion)
	return args.Error(0)
}

func (m *PromotionRepository) GetPromotionByID(ctx context.Context, id uint) (*entities.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Promotion), args.Error(1)
}

func (m *PromotionRepository) GetPromotionByCode(ctx context.Context, code string) (*entities.Promotion, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Promotion), args.Error(1)
}

func (m *PromotionRepository) GetPromotions(ctx context.Context) ([]*entities.Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Promotion), args.Error(1)
}

func (m *PromotionRepository) GetActivePromotions(ctx context.Context, at time.Time) ([]*entities.Promotion, error) {
	args := m.Called(ctx, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Promotion), args.Error(1)
}

func (m *PromotionRepository) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	args := m.Called(ctx, code, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *PromotionRepository) UpdatePromotion(ctx context.Context, promotion *entities.Promotion) error {
	args := m.Called(ctx, promotion)
	return args.Error(0)
}

func (m *PromotionRepository) DeletePromotion(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *PromotionRepository) IsPromotionUsed(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
