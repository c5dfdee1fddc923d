package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetCart   = "cart retrieved successfully"
	MessageSuccessAddCart   = "item added to cart"
	MessageFailedGetCart    = "failed to retrieve cart"
	MessageFailedAddCart    = "failed to add item to cart"
	MessageFailedUpdateCart = "failed to update cart item"
	MessageFailedRemoveCart = "failed to remove cart item"
	MessageFailedClearCart  = "failed to clear cart"

	ErrCartItemNotFound    = NewNotFoundError("cart item not found")
	ErrCartFoodNotFound    = NewValidationError("food not found")
	ErrCartInvalidQuantity = NewValidationError("quantity must be positive")
)

type (
	AddCartItemRequest struct {
		FoodID   uint `json:"food_id" validate:"required"`
		Quantity int  `json:"quantity" validate:"required"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity"`
	}

	CartItemResponse struct {
		ID           uint            `json:"id"`
		UserID       uint            `json:"user_id"`
		FoodID       uint            `json:"food_id"`
		FoodName     string          `json:"food_name"`
		FoodPrice    decimal.Decimal `json:"food_price"`
		FoodImageURL string          `json:"food_image_url,omitempty"`
		Quantity     int             `json:"quantity"`
		CreatedAt    time.Time       `json:"created_at"`
	}

	CartResponse struct {
		Items      []CartItemResponse `json:"items"`
		TotalItems int                `json:"total_items"`
		TotalPrice decimal.Decimal    `json:"total_price"`
	}
)
