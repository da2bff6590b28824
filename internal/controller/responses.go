package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sadguru-seva-be/internal/service"
)

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"code":    400,
		"message": message,
	})
}

func unauthorized(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"code":    401,
		"message": message,
	})
}

func notFound(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"code":    404,
		"message": message,
	})
}

// serviceError maps sentinel service errors onto HTTP statuses; anything
// unrecognized is a 500.
func serviceError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return badRequest(ctx, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		return unauthorized(ctx, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, service.ErrAlreadyRegistered):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"code":    409,
			"message": err.Error(),
		})
	case errors.Is(err, service.ErrNoActiveSession):
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"code":    409,
			"message": err.Error(),
		})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": "Internal server error",
		})
	}
}
