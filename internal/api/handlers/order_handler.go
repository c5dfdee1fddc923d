package handlers

import (
	"WebFood-API/domain"
	"WebFood-API/internal/api/presenters"
	"WebFood-API/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		GetOrderByID(c *fiber.Ctx) error
		GetOrdersByUser(c *fiber.Ctx) error
		GetOrdersByStatus(c *fiber.Ctx) error
		GetStatusOptions(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
		PatchOrder(c *fiber.Ctx) error
		DeleteOrder(c *fiber.Ctx) error
		GetOrderQRCode(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func invalidStatus(c *fiber.Ctx, message string, status string) error {
	return presenters.ErrorResponseWithDetails(c, fiber.StatusBadRequest, message,
		domain.NewInvalidOrderStatusError(status),
		fiber.Map{
			"valid_statuses":  domain.ValidOrderStatuses,
			"received_status": status,
		})
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	req := new(domain.CreateOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	res, err := h.orderService.CreateOrder(c.Context(), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreateOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	res, err := h.orderService.GetOrders(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetOrderByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.orderService.GetOrderByID(c.Context(), id)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetOrder, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

func (h *orderHandler) GetOrdersByUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userId")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.orderService.GetOrdersByUser(c.Context(), userID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetOrdersByStatus(c *fiber.Ctx) error {
	res, err := h.orderService.GetOrdersByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetStatusOptions(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, h.orderService.GetStatusOptions(), fiber.StatusOK, domain.MessageSuccessGetOrderStatusMenu)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.UpdateOrderStatusRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if !domain.IsValidOrderStatus(req.Status) {
		return invalidStatus(c, domain.MessageFailedUpdateOrderStatus, req.Status)
	}

	if err := h.orderService.UpdateOrderStatus(c.Context(), id, req.Status); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateOrderStatus, err)
	}
	return presenters.NoContent(c)
}

func (h *orderHandler) PatchOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.PatchOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if req.Status != nil && !domain.IsValidOrderStatus(*req.Status) {
		return invalidStatus(c, domain.MessageFailedUpdateOrder, *req.Status)
	}

	if err := h.orderService.PatchOrder(c.Context(), id, *req); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateOrder, err)
	}
	return presenters.NoContent(c)
}

func (h *orderHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	if err := h.orderService.DeleteOrder(c.Context(), id); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteOrder, err)
	}
	return presenters.NoContent(c)
}

func (h *orderHandler) GetOrderQRCode(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	png, err := h.orderService.GenerateQRCode(c.Context(), id)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGenerateOrderQR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
