package service

import (
	"context"

	"go.uber.org/zap"

	"journey-catalog-service/internal/domain"
)

// ContactService persists contact form submissions.
type ContactService struct {
	repo   domain.ContactRepository
	logger *zap.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(repo domain.ContactRepository, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:   repo,
		logger: logger,
	}
}

// Submit stores a contact message.
func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	if err := s.repo.SaveContact(ctx, msg); err != nil {
		s.logger.Error("contact submission failed", zap.Error(err))
		return err
	}

	s.logger.Info("contact message received",
		zap.String("name", msg.Name),
		zap.String("area", msg.Area),
	)

	return nil
}
