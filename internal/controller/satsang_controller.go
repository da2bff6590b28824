package controller

import (
	"github.com/gofiber/fiber/v2"

	"sadguru-seva-be/internal/service"
)

type ISatsangController interface {
	RegisterRoutes(r fiber.Router)
	Page(ctx *fiber.Ctx) error
	ServerTime(ctx *fiber.Ctx) error
}

type satsangController struct {
	service service.ISatsangService
}

func NewSatsangController(service service.ISatsangService) ISatsangController {
	return &satsangController{service: service}
}

func (c *satsangController) RegisterRoutes(r fiber.Router) {
	r.Get("/satsang", c.Page)
	r.Get("/time", c.ServerTime)
}

func (c *satsangController) Page(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 0)

	res, err := c.service.Page(ctx.Context(), page)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Satsang",
		"data":    res,
	})
}

func (c *satsangController) ServerTime(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Server time",
		"data":    c.service.ServerTime(),
	})
}
