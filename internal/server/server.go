package server

import (
	"log"
	"time"

	"collabnotes-be/internal/bootstrap"
	"collabnotes-be/internal/config"
	"collabnotes-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, notes are text
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-Id",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-Id",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.RequestIdMiddleware)
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger, cfg.IsProduction()))

	app.Use(serverutils.NewRateLimiter(serverutils.RateLimiterConfig{
		Max:    30,
		Window: time.Minute,
	}))

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	app.Get("/", index)

	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api, c.JwtMiddleware, c.AuthLimiter)
	c.NoteController.RegisterRoutes(api, c.JwtMiddleware, c.CreateLimiter)
}

func index(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message": "Collaborative Notes API",
		"status":  "running",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"auth": fiber.Map{
				"register": "POST /api/auth/v1/register",
				"login":    "POST /api/auth/v1/login",
				"getUser":  "GET /api/auth/v1/:id",
			},
			"notes": fiber.Map{
				"getAll": "GET /api/note/v1",
				"getOne": "GET /api/note/v1/:id",
				"create": "POST /api/note/v1",
				"update": "PUT /api/note/v1/:id",
				"delete": "DELETE /api/note/v1/:id",
				"share":  "POST /api/note/v1/:id/share",
			},
		},
	})
}
