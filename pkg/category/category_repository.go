package category

import (
	"WebFood-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		AddCategory(ctx context.Context, category *entities.Category) error
		GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id uint) (int64, error)
		HasFoods(ctx context.Context, id uint) (bool, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) AddCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("id asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Category{})
	return result.RowsAffected, result.Error
}

func (r *categoryRepository) HasFoods(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Food{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
