package bootstrap

import (
	"time"

	"collabnotes-be/internal/config"
	"collabnotes-be/internal/controller"
	"collabnotes-be/internal/pkg/logger"
	"collabnotes-be/internal/pkg/serverutils"
	"collabnotes-be/internal/repository/unitofwork"
	"collabnotes-be/internal/service"
	"collabnotes-be/internal/token"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController controller.IAuthController
	NoteController controller.INoteController

	// Middleware
	JwtMiddleware fiber.Handler
	AuthLimiter   fiber.Handler
	CreateLimiter fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	tokenService := token.NewService(cfg.Auth.JwtSecret, cfg.Auth.JwtExpiry)

	// 2. Services
	authService := service.NewAuthService(uowFactory, tokenService)
	noteService := service.NewNoteService(uowFactory)

	// 3. Controllers
	authController := controller.NewAuthController(authService, sysLogger)
	noteController := controller.NewNoteController(noteService, sysLogger)

	// 4. Route Middleware
	jwtMiddleware := serverutils.NewJwtMiddleware(tokenService)

	authLimiter := serverutils.NewRateLimiter(serverutils.RateLimiterConfig{
		Max:     10,
		Window:  5 * time.Minute,
		Message: "too many login attempts, try again in 5 minutes",
	})
	createLimiter := serverutils.NewRateLimiter(serverutils.RateLimiterConfig{
		Max:     10,
		Window:  time.Minute,
		Message: "too many creations, try again in 1 minute",
	})

	return &Container{
		AuthController: authController,
		NoteController: noteController,
		JwtMiddleware:  jwtMiddleware,
		AuthLimiter:    authLimiter,
		CreateLimiter:  createLimiter,
		Logger:         sysLogger,
	}
}
