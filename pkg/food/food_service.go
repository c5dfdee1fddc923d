package food

import (
	"WebFood-API/domain"
	"WebFood-API/entities"
	"WebFood-API/internal/utils/storage"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const foodImageFolder = "foods"

type (
	FoodService interface {
		GetFoods(ctx context.Context, categoryID *uint) ([]domain.FoodResponse, error)
		GetFoodByID(ctx context.Context, id uint) (domain.FoodResponse, error)
		AddFood(ctx context.Context, req domain.FoodRequest) (domain.FoodResponse, error)
		UpdateFood(ctx context.Context, id uint, req domain.FoodRequest) error
		DeleteFood(ctx context.Context, id uint) error
		UploadFoodImage(ctx context.Context, id uint, req domain.UploadFoodImageRequest) (domain.FoodResponse, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) GetFoods(ctx context.Context, categoryID *uint) ([]domain.FoodResponse, error) {
	foods, err := s.foodRepository.GetFoods(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.FoodResponse, 0, len(foods))
	for _, food := range foods {
		res = append(res, toFoodResponse(food))
	}
	return res, nil
}

func (s *foodService) getFood(ctx context.Context, id uint) (*entities.Food, error) {
	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) GetFoodByID(ctx context.Context, id uint) (domain.FoodResponse, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}
	return toFoodResponse(food), nil
}

func (s *foodService) validate(ctx context.Context, req domain.FoodRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.NewValidationError("name is required")
	}
	if req.Price.IsNegative() {
		return domain.ErrFoodInvalidPrice
	}

	exists, err := s.foodRepository.CategoryExists(ctx, req.CategoryID)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !exists {
		return domain.ErrFoodInvalidCategory
	}
	return nil
}

func (s *foodService) AddFood(ctx context.Context, req domain.FoodRequest) (domain.FoodResponse, error) {
	if err := s.validate(ctx, req); err != nil {
		return domain.FoodResponse{}, err
	}

	food := &entities.Food{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}
	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.FoodResponse{}, domain.ErrFoodInvalidCategory
		}
		return domain.FoodResponse{}, fmt.Errorf("insert food: %w", err)
	}

	logrus.WithFields(logrus.Fields{"food_id": food.ID, "category_id": food.CategoryID}).Info("food created")
	return s.GetFoodByID(ctx, food.ID)
}

func (s *foodService) UpdateFood(ctx context.Context, id uint, req domain.FoodRequest) error {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return err
	}
	if err := s.validate(ctx, req); err != nil {
		return err
	}

	food.Name = strings.TrimSpace(req.Name)
	food.Description = req.Description
	food.Price = req.Price
	food.ImageURL = req.ImageURL
	food.CategoryID = req.CategoryID

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrFoodInvalidCategory
		}
		return fmt.Errorf("update food: %w", err)
	}
	return nil
}

func (s *foodService) DeleteFood(ctx context.Context, id uint) error {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return err
	}

	ordered, err := s.foodRepository.IsFoodOrdered(ctx, id)
	if err != nil {
		return fmt.Errorf("check food orders: %w", err)
	}
	if ordered {
		return domain.ErrFoodInUse
	}

	rows, err := s.foodRepository.DeleteFood(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.ErrFoodInUse
		}
		return fmt.Errorf("delete food: %w", err)
	}
	if rows == 0 {
		return domain.ErrFoodNotFound
	}

	if food.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(food.ImageURL)
		if objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				logrus.WithError(err).WithField("food_id", id).Warn("failed to delete food image")
			}
		}
	}
	return nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, id uint, req domain.UploadFoodImageRequest) (domain.FoodResponse, error) {
	if req.Image == nil {
		return domain.FoodResponse{}, domain.NewValidationError("image is required")
	}

	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.FoodResponse{}, err
	}

	var objectKey string
	if existing := s.s3.GetObjectKeyFromLink(food.ImageURL); food.ImageURL != "" && existing != "" {
		objectKey, err = s.s3.UpdateFile(existing, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fmt.Sprintf("food-%d", id), req.Image, foodImageFolder, storage.AllowImage...)
	}
	if err != nil {
		return domain.FoodResponse{}, err
	}

	food.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.foodRepository.UpdateFoodImage(ctx, id, food.ImageURL); err != nil {
		return domain.FoodResponse{}, fmt.Errorf("update food image: %w", err)
	}
	return toFoodResponse(food), nil
}
