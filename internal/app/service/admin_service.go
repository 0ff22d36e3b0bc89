package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"journey-catalog-service/internal/auth"
	"journey-catalog-service/internal/domain"
)

// ErrInvalidCredentials is returned on login with a wrong username or
// password. The message is deliberately identical for both cases.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AdminService implements the admin session gate: credential login and token
// verification.
type AdminService struct {
	admins domain.AdminRepository
	tokens *auth.TokenIssuer
	logger *zap.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(admins domain.AdminRepository, tokens *auth.TokenIssuer, logger *zap.Logger) *AdminService {
	return &AdminService{
		admins: admins,
		tokens: tokens,
		logger: logger,
	}
}

// Session is an authenticated admin session. The token must accompany every
// admin-guarded write until cleared by logout.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login verifies credentials and issues a session token.
func (s *AdminService) Login(ctx context.Context, username, password string) (*Session, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error("admin lookup failed", zap.Error(err))
		return nil, err
	}
	if admin == nil || !auth.CheckPassword(password, admin.PasswordHash) {
		s.logger.Warn("failed login attempt", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.Username)
	if err != nil {
		s.logger.Error("token issue failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("admin logged in", zap.String("username", admin.Username))

	return &Session{Token: token, Username: admin.Username}, nil
}

// Verify checks a session token and returns the admin username it belongs
// to. A failed verification means "not authenticated"; callers redirect to
// login instead of retrying.
func (s *AdminService) Verify(token string) (string, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	return username, nil
}
