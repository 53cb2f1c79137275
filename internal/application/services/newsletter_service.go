package services

import (
	"context"
	"fmt"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/persistence/newsletter"
)

// NewsletterService accepts signup submissions. The email address has been
// validated by the handler before it reaches this service.
type NewsletterService struct {
	repo   newsletter.Repository
	logger *logging.ChanneledLogger
}

// NewNewsletterService creates the signup service over the given repository
func NewNewsletterService(repo newsletter.Repository, logger *logging.ChanneledLogger) *NewsletterService {
	return &NewsletterService{
		repo:   repo,
		logger: logger,
	}
}

// Signup constructs and stores a signup record
func (s *NewsletterService) Signup(ctx context.Context, name, email string) error {
	record := &newsletter.Signup{
		Name:  name,
		Email: email,
	}

	if err := s.repo.Save(ctx, record); err != nil {
		if s.logger != nil {
			s.logger.Signup().Error("Newsletter signup save failed", "error", err.Error())
		}
		return fmt.Errorf("failed to save newsletter signup: %w", err)
	}

	if s.logger != nil {
		s.logger.Signup().Info("Newsletter signup stored", "hasName", name != "")
	}
	return nil
}
