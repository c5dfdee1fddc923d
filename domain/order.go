package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// ValidOrderStatuses is ordered along the happy path, Cancelled last.
var ValidOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValidOrderStatus is case-sensitive.
func IsValidOrderStatus(status string) bool {
	for _, s := range ValidOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func NewInvalidOrderStatusError(status string) error {
	if status == "" {
		return ErrOrderStatusRequired
	}
	return NewValidationError(fmt.Sprintf(
		"invalid status: '%s', valid values: %s",
		status, strings.Join(ValidOrderStatuses, ", "),
	))
}

var (
	MessageSuccessGetOrders          = "orders retrieved successfully"
	MessageSuccessGetOrder           = "order retrieved successfully"
	MessageSuccessCreateOrder        = "order created successfully"
	MessageSuccessGetOrderStatusMenu = "order status options retrieved successfully"

	MessageFailedGetOrders         = "failed to retrieve orders"
	MessageFailedGetOrder          = "failed to retrieve order"
	MessageFailedCreateOrder       = "failed to create order"
	MessageFailedUpdateOrderStatus = "failed to update order status"
	MessageFailedUpdateOrder       = "failed to update order"
	MessageFailedDeleteOrder       = "failed to delete order"
	MessageFailedGenerateOrderQR   = "failed to generate order qr code"

	ErrOrderNotFound         = NewNotFoundError("order not found")
	ErrOrderUserNotFound     = NewValidationError("user not found")
	ErrOrderEmpty            = NewValidationError("order must have at least one item")
	ErrOrderInvalidQuantity  = NewValidationError("order item quantity must be positive")
	ErrOrderInvalidPrice     = NewValidationError("order item unit price must not be negative")
	ErrOrderInvalidTotal     = NewValidationError("total amount must not be negative")
	ErrOrderFoodNotFound     = NewValidationError("order references a food that does not exist")
	ErrOrderPromotionMissing = NewValidationError("promotion not found")
	ErrOrderStatusRequired   = NewValidationError("status is required")
	ErrOrderReferenceMissing = NewValidationError("order references a user, food or promotion that no longer exists")
	ErrOrderUpdateConflict   = errors.New("order changed while updating")
)

const (
	OrderEventCreated       = "order.created"
	OrderEventStatusUpdated = "order.status_updated"
	OrderEventUpdated       = "order.updated"
	OrderEventDeleted       = "order.deleted"
)

type (
	OrderFilter struct {
		UserID *uint
		Status string
	}

	OrderDetailRequest struct {
		FoodID    uint            `json:"food_id" validate:"required"`
		Quantity  int             `json:"quantity" validate:"required"`
		UnitPrice decimal.Decimal `json:"unit_price"`
	}

	CreateOrderRequest struct {
		UserID       uint                 `json:"user_id" validate:"required"`
		Address      string               `json:"address"`
		TotalAmount  *decimal.Decimal     `json:"total_amount"`
		Status       string               `json:"status"`
		PromotionID  *uint                `json:"promotion_id"`
		OrderDetails []OrderDetailRequest `json:"order_details" validate:"dive"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status"`
	}

	PatchOrderRequest struct {
		Address     *string          `json:"address"`
		Status      *string          `json:"status"`
		TotalAmount *decimal.Decimal `json:"total_amount"`
		PromotionID *uint            `json:"promotion_id"`
	}

	OrderDetailResponse struct {
		FoodID       uint            `json:"food_id"`
		FoodName     string          `json:"food_name"`
		FoodImageURL string          `json:"food_image_url,omitempty"`
		Quantity     int             `json:"quantity"`
		UnitPrice    decimal.Decimal `json:"unit_price"`
		Total        decimal.Decimal `json:"total"`
	}

	OrderResponse struct {
		ID            uint                  `json:"id"`
		UserID        uint                  `json:"user_id"`
		OrderDate     time.Time             `json:"order_date"`
		TotalAmount   decimal.Decimal       `json:"total_amount"`
		Status        string                `json:"status"`
		Address       string                `json:"address"`
		PromotionID   *uint                 `json:"promotion_id,omitempty"`
		PromotionCode string                `json:"promotion_code,omitempty"`
		TotalItems    int                   `json:"total_items"`
		OrderDetails  []OrderDetailResponse `json:"order_details"`
	}

	OrderStatusOption struct {
		Value       string `json:"value"`
		Label       string `json:"label"`
		Color       string `json:"color"`
		Icon        string `json:"icon"`
		Description string `json:"description"`
	}

	OrderEvent struct {
		Type       string    `json:"type"`
		OrderID    uint      `json:"order_id"`
		UserID     uint      `json:"user_id,omitempty"`
		Status     string    `json:"status,omitempty"`
		OccurredAt time.Time `json:"occurred_at"`
	}
)
