package handlers

import (
	"WebFood-API/domain"
	"WebFood-API/internal/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// paramID reads a positive integer route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(middleware.LocalsUserID).(uint)
	return id
}
