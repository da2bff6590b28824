// FILE: internal/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"sadguru-seva-be/internal/dto"
	"sadguru-seva-be/internal/pkg/serverutils"
	"sadguru-seva-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SendOTP(ctx *fiber.Ctx) error
	VerifyOTP(ctx *fiber.Ctx) error
	ResendOTP(ctx *fiber.Ctx) error
	HarijapLogin(ctx *fiber.Ctx) error
	AdminLogin(ctx *fiber.Ctx) error
	CheckSession(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	japa := r.Group("/auth/japa")
	japa.Post("/send_otp", c.SendOTP)
	japa.Post("/verify_otp", c.VerifyOTP)
	japa.Post("/resend_otp", c.ResendOTP)
	japa.Post("/logout", c.Logout)
	japa.Get("/check_session", c.CheckSession)

	r.Post("/harijap/auth/login", c.HarijapLogin)
	r.Post("/admin/auth/login", c.AdminLogin)
}

func (c *authController) SendOTP(ctx *fiber.Ctx) error {
	var req dto.SendOTPRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.SendOTP(ctx.Context(), &req)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OTP sent",
		"data":    res,
	})
}

func (c *authController) VerifyOTP(ctx *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.VerifyOTP(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return unauthorized(ctx, "Invalid or expired OTP")
		}
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login successful",
		"data":    res,
	})
}

func (c *authController) ResendOTP(ctx *fiber.Ctx) error {
	var req dto.ResendOTPRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.ResendOTP(ctx.Context(), &req)
	if err != nil {
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "OTP resent",
		"data":    res,
	})
}

func (c *authController) HarijapLogin(ctx *fiber.Ctx) error {
	var req dto.HarijapLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.HarijapLogin(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return unauthorized(ctx, "Name and mobile do not match any registered bhakt")
		}
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Login successful",
		"data":    res,
	})
}

func (c *authController) AdminLogin(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := serverutils.ValidateStruct(req); err != nil {
		return badRequest(ctx, err.Error())
	}

	res, err := c.service.AdminLogin(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			return unauthorized(ctx, "Invalid admin credentials")
		}
		return serviceError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Admin login successful",
		"data":    res,
	})
}

func (c *authController) CheckSession(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.JSON(fiber.Map{
			"success": true,
			"code":    200,
			"message": "No session",
			"data":    dto.CheckSessionResponse{LoggedIn: false},
		})
	}

	claims, err := serverutils.ParseToken(authHeader[7:])
	if err != nil {
		return ctx.JSON(fiber.Map{
			"success": true,
			"code":    200,
			"message": "No session",
			"data":    dto.CheckSessionResponse{LoggedIn: false},
		})
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Session active",
		"data":    c.service.CheckSession(ctx.Context(), claims),
	})
}

// Logout is stateless: tokens are short-lived and the client discards its
// copy. The endpoint exists so clients have a uniform call.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Logged out",
		"data":    nil,
	})
}
