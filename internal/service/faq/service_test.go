package faq

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestAnswer_MatchFound(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockRepo := &mocks.MockFAQRepository{
		ListByClientFunc: func(ctx context.Context, clientID string) ([]domain.FAQEntry, error) {
			return []domain.FAQEntry{
				{Question: "What are your prices?", Answer: "From $2,500.", Keywords: []string{"price"}},
			}, nil
		},
	}

	service := NewService(mockRepo, newTestLogger())

	// Act
	match := service.Answer(ctx, "client-1", "what is your price range")

	// Assert
	if !match.Found {
		t.Fatal("expected a match")
	}
	if match.Answer != "From $2,500." {
		t.Errorf("unexpected answer: %s", match.Answer)
	}
}

func TestAnswer_StoreErrorDegradesToNoMatch(t *testing.T) {
	// Arrange
	ctx := context.Background()

	mockRepo := &mocks.MockFAQRepository{
		ListByClientFunc: func(ctx context.Context, clientID string) ([]domain.FAQEntry, error) {
			return nil, errors.New("connection refused")
		},
	}

	service := NewService(mockRepo, newTestLogger())

	// Act
	match := service.Answer(ctx, "client-1", "what is your price range")

	// Assert
	if match.Found {
		t.Error("expected degraded no-match verdict on store error")
	}
	if match.Answer != "" {
		t.Errorf("expected empty answer, got '%s'", match.Answer)
	}
}
