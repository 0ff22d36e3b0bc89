// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"journey-catalog-service/internal/app/service"
	"journey-catalog-service/internal/transport/httpserver/handler"
	"journey-catalog-service/internal/transport/httpserver/middleware"
	"journey-catalog-service/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port      int
	BodyLimit int
	Debug     bool
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg ServerConfig,
	catalogSvc *service.CatalogService,
	adminSvc *service.AdminService,
	contactSvc *service.ContactService,
	db *gorm.DB,
	v *validator.Validator,
	logger *zap.Logger,
) *Server {
	// Template engine for the dashboard
	engine := html.New("./web/templates", ".html")
	if cfg.Debug {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		AppName:      "journey-catalog-service",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(logger),
		Views:        engine,
	})

	// Health check middleware MUST be registered BEFORE other middleware
	// for Kubernetes probes to work even during high load
	app.Use(middleware.NewHealthCheck(db))

	// Global middleware
	app.Use(requestid.New())
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(cors.New())
	app.Use(compress.New())

	// Static files
	app.Static("/static", "./web/static")

	// Create handlers
	videoHandler := handler.NewVideoHandler(catalogSvc, v, logger)
	adminHandler := handler.NewAdminHandler(adminSvc, v, logger)
	contactHandler := handler.NewContactHandler(contactSvc, v, logger)
	dashboardHandler := handler.NewDashboardHandler(catalogSvc, logger)

	adminGuard := middleware.RequireAdmin(adminSvc, logger)

	registerRoutes(app, videoHandler, adminHandler, contactHandler, dashboardHandler, adminGuard)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// registerRoutes sets up all API routes.
func registerRoutes(
	app *fiber.App,
	videoHandler *handler.VideoHandler,
	adminHandler *handler.AdminHandler,
	contactHandler *handler.ContactHandler,
	dashboardHandler *handler.DashboardHandler,
	adminGuard fiber.Handler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	// Dashboard (HTML)
	app.Get("/dashboard", dashboardHandler.Render)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	api := app.Group("/api")

	// Videos
	videos := api.Group("/videos")
	videos.Get("/", videoHandler.List)
	videos.Get("/tags/all", videoHandler.Tags)
	videos.Get("/:id", videoHandler.GetByID)
	videos.Post("/", adminGuard, videoHandler.Create)
	videos.Put("/:id", adminGuard, videoHandler.Update)
	videos.Delete("/:id", adminGuard, videoHandler.Delete)

	// Journey stats
	api.Get("/stats", videoHandler.Stats)

	// Contact form
	api.Post("/contact", contactHandler.Submit)

	// Admin session
	admin := api.Group("/admin")
	admin.Post("/login", adminHandler.Login)
	admin.Post("/verify", adminGuard, adminHandler.Verify)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level (expected client behavior), 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		case code >= 500:
			logger.Error("server error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		case code >= 400:
			logger.Warn("client error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		default:
			logger.Error("unhandled error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"detail": err.Error(),
		})
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}
