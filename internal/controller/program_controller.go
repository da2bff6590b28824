package controller

import (
	"github.com/gofiber/fiber/v2"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/pkg/serverutils"
	"sadguru-seva-be/internal/service"
)

type IProgramController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	Upcoming(ctx *fiber.Ctx) error
	Past(ctx *fiber.Ctx) error
}

type programController struct {
	service service.IProgramService
}

func NewProgramController(service service.IProgramService) IProgramController {
	return &programController{service: service}
}

func (c *programController) RegisterRoutes(r fiber.Router) {
	programs := r.Group("/programs")
	programs.Get("/upcoming", c.Upcoming)
	programs.Get("/past", c.Past)
	programs.Post("/", c.Submit)
}

func (c *programController) Submit(ctx *fiber.Ctx) error {
	var req dto.SubmitProgramRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Program submitted",
		"data":    res,
	})
}

func (c *programController) Upcoming(ctx *fiber.Ctx) error {
	res, err := c.service.Upcoming(ctx.Context())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Upcoming programs",
		"data":    res,
	})
}

func (c *programController) Past(ctx *fiber.Ctx) error {
	res, err := c.service.Past(ctx.Context())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Past programs",
		"data":    res,
	})
}
