// FILE: internal/controller/japa_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/japa/pattern"
	"sadguru-seva-be/internal/pkg/serverutils"
	"sadguru-seva-be/internal/repository/memory"
	"sadguru-seva-be/internal/service"
)

type IJapaController interface {
	RegisterRoutes(r fiber.Router)
	StartSession(ctx *fiber.Ctx) error
	RecordWord(ctx *fiber.Ctx) error
	EndSession(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Pattern(ctx *fiber.Ctx) error
	Leaderboard(ctx *fiber.Ctx) error
	CityStats(ctx *fiber.Ctx) error
}

type japaController struct {
	service service.IJapaService
	tokens  *memory.TokenRepository
}

func NewJapaController(service service.IJapaService, tokens *memory.TokenRepository) IJapaController {
	return &japaController{
		service: service,
		tokens:  tokens,
	}
}

func (c *japaController) RegisterRoutes(r fiber.Router) {
	japa := r.Group("/japa")
	japa.Get("/pattern", c.Pattern)
	japa.Get("/leaderboard", c.Leaderboard)
	japa.Get("/city_stats", c.CityStats)
	japa.Post("/session/start", c.StartSession)
	japa.Post("/session/word", c.RecordWord)
	japa.Post("/session/end", c.EndSession)
	japa.Get("/stats", c.Stats)
}

// userToken resolves the caller's identity: a JWT if presented, otherwise
// an anonymous token from header or a freshly minted one. Anonymous clients
// must resend the returned token to keep their history.
func (c *japaController) userToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		if claims, err := serverutils.ParseToken(authHeader[7:]); err == nil {
			if token, ok := claims["user_token"].(string); ok && token != "" {
				return token
			}
		}
	}

	if anon := ctx.Get("X-Japa-Token"); anon != "" {
		return c.tokens.Touch(anon).Token
	}

	return c.tokens.Issue().Token
}

func (c *japaController) StartSession(ctx *fiber.Ctx) error {
	token := c.userToken(ctx)

	res, err := c.service.StartSession(ctx.Context(), token)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success":    true,
		"code":       200,
		"message":    "Session ready",
		"data":       res,
		"user_token": token,
	})
}

func (c *japaController) RecordWord(ctx *fiber.Ctx) error {
	token := c.userToken(ctx)

	var req dto.RecordWordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.RecordWord(ctx.Context(), token, &req)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Word processed",
		"data":    res,
	})
}

func (c *japaController) EndSession(ctx *fiber.Ctx) error {
	token := c.userToken(ctx)

	res, err := c.service.EndSession(ctx.Context(), token)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Session closed",
		"data":    res,
	})
}

func (c *japaController) Stats(ctx *fiber.Ctx) error {
	token := c.userToken(ctx)

	res, err := c.service.Stats(ctx.Context(), token)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Stats",
		"data":    res,
	})
}

func (c *japaController) Pattern(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Mantra pattern",
		"data": fiber.Map{
			"words":            pattern.Display(),
			"total_utterances": pattern.TotalUtterances,
			"group_count":      pattern.GroupCount(),
		},
	})
}

func (c *japaController) Leaderboard(ctx *fiber.Ctx) error {
	res, err := c.service.Leaderboard(ctx.Context())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Leaderboard",
		"data":    res,
	})
}

func (c *japaController) CityStats(ctx *fiber.Ctx) error {
	res, err := c.service.CityStats(ctx.Context())
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "City stats",
		"data":    res,
	})
}
