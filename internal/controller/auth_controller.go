package controller

import (
	"strconv"

	"collabnotes-be/internal/apperror"
	"collabnotes-be/internal/dto"
	"collabnotes-be/internal/pkg/logger"
	"collabnotes-be/internal/pkg/serverutils"
	"collabnotes-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler, authLimiter fiber.Handler)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	GetUser(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	log     logger.ILogger
}

func NewAuthController(service service.IAuthService, log logger.ILogger) IAuthController {
	return &authController{service: service, log: log}
}

func (c *authController) RegisterRoutes(r fiber.Router, authMiddleware fiber.Handler, authLimiter fiber.Handler) {
	h := r.Group("/auth/v1")
	h.Post("/register", authLimiter, c.Register)
	h.Post("/login", authLimiter, c.Login)
	h.Get("/:id", authMiddleware, c.GetUser)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.log.Info("auth", "user registered", map[string]interface{}{
		"request_id": serverutils.RequestId(ctx),
		"user_id":    res.User.Id,
	})

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("User registered successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	c.log.Info("auth", "user logged in", map[string]interface{}{
		"request_id": serverutils.RequestId(ctx),
		"user_id":    res.User.Id,
	})

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) GetUser(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 64)
	if err != nil {
		return apperror.Validation("invalid user id")
	}

	res, err := c.service.GetUser(ctx.Context(), uint(id))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get user", res))
}
