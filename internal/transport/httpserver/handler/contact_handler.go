package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"journey-catalog-service/internal/app/service"
	"journey-catalog-service/internal/domain"
	"journey-catalog-service/internal/transport/httpserver/dto"
	"journey-catalog-service/internal/validator"
)

// ContactHandler handles contact form HTTP requests.
type ContactHandler struct {
	service   *service.ContactService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc *service.ContactService, v *validator.Validator, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
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

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Area:    req.Area,
		Message: req.Message,
	}
	if err := h.service.Submit(c.Context(), msg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "failed to submit message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{Success: true, Message: "message received successfully"})
}
