package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/pkg/serverutils"
	"sadguru-seva-be/internal/service"
)

type IPhotoController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Random(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type photoController struct {
	service service.IPhotoService
}

func NewPhotoController(service service.IPhotoService) IPhotoController {
	return &photoController{service: service}
}

func (c *photoController) RegisterRoutes(r fiber.Router) {
	photos := r.Group("/photos")
	photos.Get("/", c.List)
	photos.Get("/random", c.Random)
	photos.Get("/categories", c.Categories)
	photos.Get("/stats", c.Stats)
	photos.Get("/:id", c.Get)

	admin := photos.Group("/", serverutils.JwtMiddleware, serverutils.AdminOnly)
	admin.Post("/", c.Create)
	admin.Put("/:id", c.Update)
	admin.Delete("/:id", c.Delete)
}

func (c *photoController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category")
	limit := ctx.QueryInt("limit", 24)
	offset := ctx.QueryInt("offset", 0)

	rows, total, err := c.service.List(ctx.Context(), category, limit, offset)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Photos",
		"data": fiber.Map{
			"photos": rows,
			"total":  total,
		},
	})
}

func (c *photoController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "Invalid photo id")
	}

	res, err := c.service.Get(ctx.Context(), id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Photo",
		"data":    res,
	})
}

func (c *photoController) Random(ctx *fiber.Ctx) error {
	res, err := c.service.Random(ctx.Context())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Photo",
		"data":    res,
	})
}

func (c *photoController) Categories(ctx *fiber.Ctx) error {
	res, err := c.service.Categories(ctx.Context())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Categories",
		"data":    res,
	})
}

func (c *photoController) Stats(ctx *fiber.Ctx) error {
	res, err := c.service.Stats(ctx.Context())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Photo stats",
		"data":    res,
	})
}

func (c *photoController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePhotoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	uploadedBy, _ := ctx.Locals("name").(string)
	res, err := c.service.Create(ctx.Context(), &req, uploadedBy)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Photo created",
		"data":    res,
	})
}

func (c *photoController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "Invalid photo id")
	}

	var req dto.UpdatePhotoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	req.Id = id
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := c.service.Update(ctx.Context(), &req); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Photo updated",
		"data":    nil,
	})
}

func (c *photoController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "Invalid photo id")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Photo deleted",
		"data":    nil,
	})
}
