package handlers

import (
	"WebFood-API/domain"
	"WebFood-API/internal/api/presenters"
	"WebFood-API/pkg/food"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetFoodByID(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoods, domain.ErrInvalidID)
		}
		v := uint(id)
		categoryID = &v
	}

	res, err := h.foodService.GetFoods(c.Context(), categoryID)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetFoods, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoods)
}

func (h *foodHandler) GetFoodByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	res, err := h.foodService.GetFoodByID(c.Context(), id)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedGetFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFood)
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.FoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood, err)
	}

	res, err := h.foodService.AddFood(c.Context(), *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedAddFood, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFood)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.FoodRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFood, err)
	}

	if err := h.foodService.UpdateFood(c.Context(), id, *req); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUpdateFood, err)
	}

	return presenters.NoContent(c)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}

	if err := h.foodService.DeleteFood(c.Context(), id); err != nil {
		return presenters.ServiceError(c, domain.MessageFailedDeleteFood, err)
	}

	return presenters.NoContent(c)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidID, err)
	}
	req := new(domain.UploadFoodImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadFoodImage, err)
	}

	res, err := h.foodService.UploadFoodImage(c.Context(), id, *req)
	if err != nil {
		return presenters.ServiceError(c, domain.MessageFailedUploadFoodImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadFoodImage)
}
