package handlers

import (
	"WebFood-API/domain"
	"WebFood-API/internal/api/presenters"
	"WebFood-API/pkg/payment"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		CreateVnPayPayment(c *fiber.Ctx) error
		CreateMomoPayment(c *fiber.Ctx) error
		CreateMidtransPayment(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

type createPaymentFunc func(ctx context.Context, req domain.PaymentRequest) (domain.PaymentURLResponse, error)

func (h *paymentHandler) create(c *fiber.Ctx, create createPaymentFunc) error {
	req := new(domain.PaymentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
	}

	res, err := create(c.Context(), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreatePayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCreatePayment)
}

func (h *paymentHandler) CreateVnPayPayment(c *fiber.Ctx) error {
	return h.create(c, h.paymentService.CreateVnPayPayment)
}

func (h *paymentHandler) CreateMomoPayment(c *fiber.Ctx) error {
	return h.create(c, h.paymentService.CreateMomoPayment)
}

func (h *paymentHandler) CreateMidtransPayment(c *fiber.Ctx) error {
	return h.create(c, h.paymentService.CreateMidtransPayment)
}
