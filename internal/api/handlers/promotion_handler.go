package handlers

import (
	"WebFood-API/domain"
	"WebFood-API/internal/api/presenters"
	"WebFood-API/pkg/promotion"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PromotionHandler interface {
		GetPromotions(c *fiber.Ctx) error
		GetPromotionByID(c *fiber.Ctx) error
		GetActivePromotions(c *fiber.Ctx) error
		ValidateCode(c *fiber.Ctx) error
		CreatePromotion(c *fiber.Ctx) error
		UpdatePromotion(c *fiber.Ctx) error
		DeletePromotion(c *fiber.Ctx) error
	}

	promotionHandler struct {
		promotionService promotion.PromotionService
		validator        *validator.Validate
	}
)

func NewPromotionHandler(promotionService promotion.PromotionService, validator *validator.Validate) PromotionHandler {
	return &promotionHandler{
		promotionService: promotionService,
		validator:        validator,
	}
}

func (h *promotionHandler) GetPromotions(c *fiber.Ctx) error {
	res, err := h.promotionService.GetPromotions(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPromotions, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPromotions)
}

func (h *promotionHandler) GetPromotionByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.promotionService.GetPromotionByID(c.Context(), id)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPromotion, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPromotion)
}

func (h *promotionHandler) GetActivePromotions(c *fiber.Ctx) error {
	res, err := h.promotionService.GetActivePromotions(c.Context())
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetPromotions, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPromotions)
}

func (h *promotionHandler) ValidateCode(c *fiber.Ctx) error {
	res, err := h.promotionService.ValidateCode(c.Context(), c.Params("code"))
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedValidatePromotion, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessValidatePromotion)
}

func (h *promotionHandler) CreatePromotion(c *fiber.Ctx) error {
	req := new(domain.CreatePromotionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePromotion, err)
	}

	res, err := h.promotionService.CreatePromotion(c.Context(), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedCreatePromotion, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePromotion)
}

func (h *promotionHandler) UpdatePromotion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.UpdatePromotionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePromotion, err)
	}

	if err := h.promotionService.UpdatePromotion(c.Context(), id, *req); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdatePromotion, err)
	}
	return presenters.NoContent(c)
}

func (h *promotionHandler) DeletePromotion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	if err := h.promotionService.DeletePromotion(c.Context(), id); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeletePromotion, err)
	}
	return presenters.NoContent(c)
}
