package handlers

import (
	"WebFood-API/domain"
	"WebFood-API/internal/api/presenters"
	"WebFood-API/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		GetCart(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		ClearCart(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) GetCart(c *fiber.Ctx) error {
	res, err := h.cartService.GetCart(c.Context(), currentUserID(c))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetCart, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *cartHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCart, err)
	}

	res, err := h.cartService.AddItem(c.Context(), currentUserID(c), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedAddCart, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddCart)
}

func (h *cartHandler) UpdateItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.UpdateCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.cartService.UpdateItem(c.Context(), currentUserID(c), itemID, *req); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateCart, err)
	}
	return presenters.NoContent(c)
}

func (h *cartHandler) RemoveItem(c *fiber.Ctx) error {
	itemID, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	if err := h.cartService.RemoveItem(c.Context(), currentUserID(c), itemID); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedRemoveCart, err)
	}
	return presenters.NoContent(c)
}

func (h *cartHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.cartService.ClearCart(c.Context(), currentUserID(c)); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedClearCart, err)
	}
	return presenters.NoContent(c)
}
