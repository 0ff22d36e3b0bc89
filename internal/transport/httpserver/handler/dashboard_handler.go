package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"journey-catalog-service/internal/app/service"
)

// DashboardHandler handles dashboard-related HTTP requests.
type DashboardHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.CatalogService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		catalogService: svc,
		logger:         logger,
	}
}

// Render handles GET /dashboard
// Renders the journey progress page using Fiber's template engine.
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	stats, err := h.catalogService.Stats(c.Context())
	if err != nil {
		h.logger.Error("dashboard stats failed", zap.Error(err))

		return fiber.ErrInternalServerError
	}

	return c.Render("pages/dashboard", fiber.Map{
		"Title": "100-Day Journey",
		"Stats": stats,
	}, "layouts/base")
}
