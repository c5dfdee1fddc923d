package domain

import (
	"time"
)

var (
	MessageSuccessGetPromotions     = "promotions retrieved successfully"
	MessageSuccessGetPromotion      = "promotion retrieved successfully"
	MessageSuccessCreatePromotion   = "promotion created successfully"
	MessageSuccessValidatePromotion = "promotion code is valid"

	MessageFailedGetPromotions     = "failed to retrieve promotions"
	MessageFailedGetPromotion      = "failed to retrieve promotion"
	MessageFailedCreatePromotion   = "failed to create promotion"
	MessageFailedUpdatePromotion   = "failed to update promotion"
	MessageFailedDeletePromotion   = "failed to delete promotion"
	MessageFailedValidatePromotion = "failed to validate promotion code"

	ErrPromotionNotFound         = NewNotFoundError("promotion not found")
	ErrPromotionCodeNotFound     = NewNotFoundError("promotion code not found")
	ErrPromotionCodeRequired     = NewValidationError("promotion code is required")
	ErrPromotionCodeExists       = NewValidationError("promotion code already exists")
	ErrPromotionInvalidDateRange = NewValidationError("start date cannot be later than end date")
	ErrPromotionInvalidDiscount  = NewValidationError("discount percent must be between 0 and 100")
	ErrPromotionExpired          = NewValidationError("promotion code has expired")
	ErrPromotionNotYetActive     = NewValidationError("promotion code is not yet active")
	ErrPromotionInUse            = NewConflictError("cannot delete promotion as it is being used in orders, consider updating the end date instead")
)

const DefaultPromotionDuration = 30 * 24 * time.Hour

type (
	CreatePromotionRequest struct {
		Code            string     `json:"code" validate:"max=50"`
		Description     string     `json:"description" validate:"max=255"`
		DiscountPercent *int       `json:"discount_percent"`
		StartDate       *time.Time `json:"start_date"`
		EndDate         *time.Time `json:"end_date"`
	}

	UpdatePromotionRequest struct {
		Code            *string    `json:"code" validate:"omitempty,max=50"`
		Description     *string    `json:"description" validate:"omitempty,max=255"`
		DiscountPercent *int       `json:"discount_percent"`
		StartDate       *time.Time `json:"start_date"`
		EndDate         *time.Time `json:"end_date"`
	}

	PromotionResponse struct {
		ID              uint      `json:"id"`
		Code            string    `json:"code"`
		Description     string    `json:"description,omitempty"`
		DiscountPercent *int      `json:"discount_percent,omitempty"`
		StartDate       time.Time `json:"start_date"`
		EndDate         time.Time `json:"end_date"`
	}

	ValidatePromotionResponse struct {
		Valid     bool              `json:"valid"`
		Promotion PromotionResponse `json:"promotion"`
	}
)
