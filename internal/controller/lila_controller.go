package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/pkg/serverutils"
	"sadguru-seva-be/internal/service"
)

type ILilaController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type lilaController struct {
	service service.ILilaService
}

func NewLilaController(service service.ILilaService) ILilaController {
	return &lilaController{service: service}
}

func (c *lilaController) RegisterRoutes(r fiber.Router) {
	lilas := r.Group("/lilas")
	lilas.Get("/", c.List)
	lilas.Get("/search", c.Search)
	lilas.Get("/categories", c.Categories)
	lilas.Get("/:id", c.Get)

	admin := lilas.Group("/", serverutils.JwtMiddleware, serverutils.AdminOnly)
	admin.Post("/", c.Create)
	admin.Put("/:id", c.Update)
	admin.Delete("/:id", c.Delete)
}

func (c *lilaController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category")
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 12)

	res, err := c.service.List(ctx.Context(), category, page, limit)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Lilas",
		"data":    res,
	})
}

func (c *lilaController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 12)

	res, err := c.service.Search(ctx.Context(), query, page, limit)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Search results",
		"data":    res,
	})
}

func (c *lilaController) Categories(ctx *fiber.Ctx) error {
	res, err := c.service.CategoryStats(ctx.Context())
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

func (c *lilaController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "Invalid lila id")
	}

	res, err := c.service.Get(ctx.Context(), id)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Lila",
		"data":    res,
	})
}

func (c *lilaController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateLilaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	createdBy, _ := ctx.Locals("name").(string)
	res, err := c.service.Create(ctx.Context(), &req, createdBy)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Lila created",
		"data":    res,
	})
}

func (c *lilaController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "Invalid lila id")
	}

	var req dto.UpdateLilaRequest
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
		"message": "Lila updated",
		"data":    nil,
	})
}

func (c *lilaController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return badRequest(ctx, "Invalid lila id")
	}

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Lila deleted",
		"data":    nil,
	})
}
