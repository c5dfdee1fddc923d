package category

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetCategoryByID(ctx context.Context, id uint) (domain.CategoryResponse, error)
		AddCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id uint, req domain.CategoryRequest) error
		DeleteCategory(ctx context.Context, id uint) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func toCategoryResponse(category *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{ID: category.ID, Name: category.Name}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		res = append(res, toCategoryResponse(category))
	}
	return res, nil
}

func (s *categoryService) getCategory(ctx context.Context, id uint) (*entities.Category, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uint) (domain.CategoryResponse, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	return toCategoryResponse(category), nil
}

func (s *categoryService) AddCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CategoryResponse{}, domain.ErrCategoryNameRequired
	}

	category := &entities.Category{Name: name}
	if err := s.categoryRepository.AddCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, fmt.Errorf("insert category: %w", err)
	}
	return toCategoryResponse(category), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req domain.CategoryRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ErrCategoryNameRequired
	}

	category, err := s.getCategory(ctx, id)
	if err != nil {
		return err
	}

	category.Name = name
	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := s.getCategory(ctx, id); err != nil {
		return err
	}

	hasFoods, err := s.categoryRepository.HasFoods(ctx, id)
	if err != nil {
		return fmt.Errorf("check category foods: %w", err)
	}
	if hasFoods {
		return domain.ErrCategoryInUse
	}

	rows, err := s.categoryRepository.DeleteCategory(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrCategoryInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if rows == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
