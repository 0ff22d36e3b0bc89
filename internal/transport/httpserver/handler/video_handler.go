// Package handler provides HTTP handlers for the API.
package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"journey-catalog-service/internal/app/service"
	"journey-catalog-service/internal/transport/httpserver/dto"
	"journey-catalog-service/internal/validator"
)

// VideoHandler handles video catalog HTTP requests.
type VideoHandler struct {
	service   *service.CatalogService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(svc *service.CatalogService, v *validator.Validator, logger *zap.Logger) *VideoHandler {
	return &VideoHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// List handles GET /api/videos
func (h *VideoHandler) List(c *fiber.Ctx) error {
	var req dto.ListVideosRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "invalid query parameters",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "validation failed",
			Errors: err,
		})
	}

	list, err := h.service.List(c.Context(), req.ToListParams())
	if err != nil {
		h.logger.Error("list videos failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "failed to list videos",
		})
	}

	return c.JSON(dto.FromVideoList(list))
}

// GetByID handles GET /api/videos/:id
func (h *VideoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "id is required",
		})
	}

	video, err := h.service.Get(c.Context(), id)
	if err != nil {
		h.logger.Error("get video failed", zap.String("id", id), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "failed to get video",
		})
	}

	if video == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Detail: "video not found",
		})
	}

	return c.JSON(dto.FromDomainVideo(video))
}

// Create handles POST /api/videos (admin-guarded)
func (h *VideoHandler) Create(c *fiber.Ctx) error {
	var req dto.VideoPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "validation failed",
			Errors: err,
		})
	}

	created, err := h.service.Create(c.Context(), req.ToDomain())
	if err != nil {
		h.logger.Error("create video failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "failed to create video",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromDomainVideo(created))
}

// Update handles PUT /api/videos/:id (admin-guarded)
func (h *VideoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "id is required",
		})
	}

	var req dto.VideoPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "validation failed",
			Errors: err,
		})
	}

	updated, err := h.service.Update(c.Context(), id, req.ToDomain())
	if err != nil {
		h.logger.Error("update video failed", zap.String("id", id), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "failed to update video",
		})
	}

	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Detail: "video not found",
		})
	}

	return c.JSON(dto.FromDomainVideo(updated))
}

// Delete handles DELETE /api/videos/:id (admin-guarded)
func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "id is required",
		})
	}

	ok, err := h.service.Delete(c.Context(), id)
	if err != nil {
		h.logger.Error("delete video failed", zap.String("id", id), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "failed to delete video",
		})
	}

	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Detail: "video not found",
		})
	}

	return c.JSON(dto.StatusResponse{Success: true, Message: "video deleted successfully"})
}

// Tags handles GET /api/videos/tags/all
func (h *VideoHandler) Tags(c *fiber.Ctx) error {
	tags, err := h.service.Tags(c.Context())
	if err != nil {
		h.logger.Error("list tags failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "failed to list tags",
		})
	}

	// Bare array response, sentinel first
	return c.JSON(tags)
}

// Stats handles GET /api/stats
func (h *VideoHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		h.logger.Error("stats failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "failed to compute stats",
		})
	}

	return c.JSON(stats)
}
