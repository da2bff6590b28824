package controller

import (
	"github.com/gofiber/fiber/v2"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/pkg/serverutils"
	"sadguru-seva-be/internal/service"
)

type IBhaktController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Contact(ctx *fiber.Ctx) error
}

type bhaktController struct {
	service service.IBhaktService
}

func NewBhaktController(service service.IBhaktService) IBhaktController {
	return &bhaktController{service: service}
}

func (c *bhaktController) RegisterRoutes(r fiber.Router) {
	r.Post("/bhaktgan", c.Register)
	r.Get("/bhaktgan", c.List)
	r.Post("/contact", c.Contact)
}

func (c *bhaktController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterBhaktRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Bhakt registered",
		"data":    res,
	})
}

func (c *bhaktController) List(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	rows, total, err := c.service.List(ctx.Context(), limit, offset)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Bhaktgan",
		"data": fiber.Map{
			"bhakts": rows,
			"total":  total,
		},
	})
}

func (c *bhaktController) Contact(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.SubmitContact(ctx.Context(), &req)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Message received",
		"data":    res,
	})
}
