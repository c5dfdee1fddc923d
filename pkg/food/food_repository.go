package food

import (
	"WebFood-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id uint) (*entities.Food, error)
		GetFoods(ctx context.Context, categoryID *uint) ([]*entities.Food, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		UpdateFoodImage(ctx context.Context, id uint, imageURL string) error
		DeleteFood(ctx context.Context, id uint) (int64, error)
		CategoryExists(ctx context.Context, categoryID uint) (bool, error)
		IsFoodOrdered(ctx context.Context, id uint) (bool, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id uint) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoods(ctx context.Context, categoryID *uint) ([]*entities.Food, error) {
	var foods []*entities.Food

	query := r.db.WithContext(ctx).Preload("Category")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Order("id asc").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("id = ?", food.ID).
		Updates(map[string]interface{}{
			"name":        food.Name,
			"description": food.Description,
			"price":       food.Price,
			"image_url":   food.ImageURL,
			"category_id": food.CategoryID,
		}).Error
}

func (r *foodRepository) UpdateFoodImage(ctx context.Context, id uint, imageURL string) error {
	return r.db.WithContext(ctx).Model(&entities.Food{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{})
	return result.RowsAffected, result.Error
}

func (r *foodRepository) CategoryExists(ctx context.Context, categoryID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *foodRepository) IsFoodOrdered(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.OrderDetail{}).Where("food_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
