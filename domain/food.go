package domain

import (
	"mime/multipart"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetFoods        = "foods retrieved successfully"
	MessageSuccessGetFood         = "food retrieved successfully"
	MessageSuccessAddFood         = "food added successfully"
	MessageSuccessUploadFoodImage = "food image uploaded successfully"

	MessageFailedGetFoods        = "failed to retrieve foods"
	MessageFailedGetFood         = "failed to retrieve food"
	MessageFailedAddFood         = "failed to add food"
	MessageFailedUpdateFood      = "failed to update food"
	MessageFailedDeleteFood      = "failed to delete food"
	MessageFailedUploadFoodImage = "failed to upload food image"

	MessageSuccessGetCategories = "categories retrieved successfully"
	MessageSuccessGetCategory   = "category retrieved successfully"
	MessageSuccessAddCategory   = "category added successfully"

	MessageFailedGetCategories  = "failed to retrieve categories"
	MessageFailedGetCategory    = "failed to retrieve category"
	MessageFailedAddCategory    = "failed to add category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrFoodNotFound         = NewNotFoundError("food not found")
	ErrFoodInvalidCategory  = NewValidationError("category id does not exist")
	ErrFoodInvalidPrice     = NewValidationError("price must not be negative")
	ErrFoodInUse            = NewConflictError("food is referenced by existing orders")
	ErrInvalidImageFormat   = NewValidationError("invalid image format")
	ErrCategoryNotFound     = NewNotFoundError("category not found")
	ErrCategoryInUse        = NewConflictError("category still has foods")
	ErrCategoryNameRequired = NewValidationError("category name is required")
)

type (
	FoodRequest struct {
		Name        string          `json:"name" validate:"required,max=100"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
		ImageURL    string          `json:"image_url" validate:"omitempty,max=255"`
		CategoryID  uint            `json:"category_id" validate:"required"`
	}

	FoodResponse struct {
		ID           uint            `json:"id"`
		Name         string          `json:"name"`
		Description  string          `json:"description"`
		Price        decimal.Decimal `json:"price"`
		ImageURL     string          `json:"image_url,omitempty"`
		CategoryID   uint            `json:"category_id"`
		CategoryName string          `json:"category_name,omitempty"`
	}

	UploadFoodImageRequest struct {
		Image *multipart.FileHeader `form:"image" validate:"required"`
	}

	CategoryRequest struct {
		Name string `json:"name" validate:"required,max=100"`
	}

	CategoryResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
