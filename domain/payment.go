package domain

import (
	"github.com/shopspring/decimal"
)

const (
	PaymentProviderVnPay    = "vnpay"
	PaymentProviderMomo     = "momo"
	PaymentProviderMidtrans = "midtrans"
)

var (
	MessageSuccessCreatePayment = "payment url created successfully"
	MessageFailedCreatePayment  = "failed to create payment"

	ErrPaymentInvalidAmount = NewValidationError("payment amount must be positive")
	ErrPaymentFailed        = NewValidationError("payment processing failed")
)

type (
	PaymentRequest struct {
		OrderID   uint             `json:"order_id" validate:"required"`
		Amount    *decimal.Decimal `json:"amount"`
		OrderInfo string           `json:"order_info" validate:"max=255"`
		Email     string           `json:"email" validate:"omitempty,email"`
	}

	PaymentURLResponse struct {
		Provider   string          `json:"provider"`
		OrderID    uint            `json:"order_id"`
		Amount     decimal.Decimal `json:"amount"`
		PaymentURL string          `json:"payment_url"`
		Token      string          `json:"token,omitempty"`
	}
)
