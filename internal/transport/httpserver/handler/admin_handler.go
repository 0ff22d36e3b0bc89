package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"journey-catalog-service/internal/app/service"
	"journey-catalog-service/internal/transport/httpserver/dto"
	"journey-catalog-service/internal/transport/httpserver/middleware"
	"journey-catalog-service/internal/validator"
)

// AdminHandler handles admin session HTTP requests.
type AdminHandler struct {
	service   *service.AdminService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc *service.AdminService, v *validator.Validator, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
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

	session, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Detail: service.ErrInvalidCredentials.Error(),
			})
		}
		h.logger.Error("login failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "login failed",
		})
	}

	return c.JSON(dto.LoginResponse{
		Success: true,
		Token:   session.Token,
		User:    dto.AdminUser{Username: session.Username},
	})
}

// Verify handles POST /api/admin/verify. The route sits behind the admin
// guard, which has already validated the bearer token and stored the
// username in the request locals.
func (h *AdminHandler) Verify(c *fiber.Ctx) error {
	username, _ := c.Locals(middleware.UsernameKey).(string)

	return c.JSON(dto.VerifyResponse{
		Valid: true,
		User:  &dto.AdminUser{Username: username},
	})
}
