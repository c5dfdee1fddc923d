package promotion

import (
	"WebFood-API/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	PromotionRepository interface {
		AddPromotion(ctx context.Context, promotion *entities.Promotion) error
		GetPromotionByID(ctx context.Context, id uint) (*entities.Promotion, error)
		GetPromotionByCode(ctx context.Context, code string) (*entities.Promotion, error)
		GetPromotions(ctx context.Context) ([]*entities.Promotion, error)
		GetActivePromotions(ctx context.Context, at time.Time) ([]*entities.Promotion, error)
		CodeExists(ctx context.Context, code string, excludeID uint) (bool, error)
		UpdatePromotion(ctx context.Context, promotion *entities.Promotion) error
		DeletePromotion(ctx context.Context, id uint) (int64, error)
		IsPromotionUsed(ctx context.Context, id uint) (bool, error)
	}

	promotionRepository struct {
		db *gorm.DB
	}
)

func NewPromotionRepository(db *gorm.DB) PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) AddPromotion(ctx context.Context, promotion *entities.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *promotionRepository) GetPromotionByID(ctx context.Context, id uint) (*entities.Promotion, error) {
	var promotion entities.Promotion
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&promotion).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) GetPromotionByCode(ctx context.Context, code string) (*entities.Promotion, error) {
	var promotion entities.Promotion
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&promotion).Error; err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) GetPromotions(ctx context.Context) ([]*entities.Promotion, error) {
	var promotions []*entities.Promotion
	if err := r.db.WithContext(ctx).Order("id asc").Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) GetActivePromotions(ctx context.Context, at time.Time) ([]*entities.Promotion, error) {
	var promotions []*entities.Promotion
	if err := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", at, at).
		Order("end_date asc").
		Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Promotion{}).Where("code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *promotionRepository) UpdatePromotion(ctx context.Context, promotion *entities.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

func (r *promotionRepository) DeletePromotion(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Promotion{})
	return result.RowsAffected, result.Error
}

func (r *promotionRepository) IsPromotionUsed(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Order{}).Where("promotion_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
