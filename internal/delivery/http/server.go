package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/seo-microservice/internal/config"
	"github.com/seo-microservice/internal/delivery/http/handler"
	"github.com/seo-microservice/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	registryHandler *handler.RegistryHandler
	resolveHandler  *handler.ResolveHandler
	toggleHandler   *handler.ToggleHandler
	statsHandler    *handler.StatsHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	registryHandler *handler.RegistryHandler,
	resolveHandler *handler.ResolveHandler,
	toggleHandler *handler.ToggleHandler,
	statsHandler *handler.StatsHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "SEO Taxonomy Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		registryHandler: registryHandler,
		resolveHandler:  resolveHandler,
		toggleHandler:   toggleHandler,
		statsHandler:    statsHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Page registry routes
	api.Get("/pages", s.registryHandler.GetPages)
	api.Get("/pages/resolve", s.resolveHandler.Resolve)
	api.Post("/pages/toggle", middleware.RequireOperator(), s.toggleHandler.Toggle)

	// Stats
	api.Get("/stats", s.statsHandler.GetStatistics)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errorCode(code),
				"message": err.Error(),
			},
		})
	}
}

// errorCode labels the error envelope by status instead of reporting every
// router-level failure as an internal error.
func errorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestTimeout:
		return "REQUEST_TIMEOUT"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	default:
		if status >= fiber.StatusBadRequest && status < fiber.StatusInternalServerError {
			return "REQUEST_ERROR"
		}
		return "INTERNAL_SERVER_ERROR"
	}
}
