package faq

import (
	"context"

	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/observability/telemetry"
	"github.com/techmayne/photobot/internal/ports"
)

// Service answers visitor questions against a tenant's stored FAQ set.
type Service struct {
	repo ports.FAQRepository
	log  *zap.Logger
}

func NewService(repo ports.FAQRepository, log *zap.Logger) ports.FAQService {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Answer loads the tenant's FAQs and runs the matcher. A store failure
// degrades to a not-found verdict so the dialog falls through to lead
// capture instead of hard-failing the turn.
func (s *Service) Answer(ctx context.Context, clientID, query string) domain.FAQMatch {
	faqs, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		s.log.Error("Failed to load FAQs, degrading to no match",
			zap.String("client_id", clientID),
			zap.Error(err),
		)
		telemetry.FAQMatches.WithLabelValues("error").Inc()
		return domain.FAQMatch{Found: false}
	}

	match := Match(faqs, query)
	if match.Found {
		telemetry.FAQMatches.WithLabelValues("found").Inc()
	} else {
		telemetry.FAQMatches.WithLabelValues("miss").Inc()
	}
	return match
}
