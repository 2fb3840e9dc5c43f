package onboarding

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func validRequest() *Request {
	return &Request{
		BusinessName:      "Luna Photography",
		WebsiteURL:        "https://lunaphoto.com",
		NotificationEmail: "owner@lunaphoto.com",
		PhoneNumber:       "555-0100",
	}
}

func TestCreate_AppliesDefaults(t *testing.T) {
	// Arrange
	var saved *domain.Client
	clients := &mocks.MockClientRepository{
		SaveFunc: func(ctx context.Context, client *domain.Client) error {
			saved = client
			return nil
		},
	}

	service := NewService(clients, &mocks.MockFAQRepository{}, mocks.NewMockQueue(), "https://widget.photobot.dev", newTestLogger())

	// Act
	result, err := service.Create(context.Background(), validRequest())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved == nil {
		t.Fatal("expected client saved")
	}
	if saved.ChatbotName != "PhotoBot AI" {
		t.Errorf("expected default chatbot name, got '%s'", saved.ChatbotName)
	}
	if saved.GalleryTimeline != "4-6 weeks" {
		t.Errorf("expected default gallery timeline, got '%s'", saved.GalleryTimeline)
	}
	if saved.AccentColor != "#6366f1" {
		t.Errorf("expected default accent color, got '%s'", saved.AccentColor)
	}
	if len(saved.ServicesOffered) != 3 {
		t.Errorf("expected default service list, got %v", saved.ServicesOffered)
	}
	if !saved.IsActive {
		t.Error("new clients must be active")
	}
	if saved.ClientToken == "" {
		t.Error("expected a generated client token")
	}
	if !strings.Contains(result.EmbedCode, saved.ClientToken) {
		t.Error("embed code must carry the client token")
	}
}

func TestCreate_KeepsProvidedValues(t *testing.T) {
	// Arrange
	var saved *domain.Client
	clients := &mocks.MockClientRepository{
		SaveFunc: func(ctx context.Context, client *domain.Client) error {
			saved = client
			return nil
		},
	}

	req := validRequest()
	req.ChatbotName = "Luna Bot"
	req.ServicesOffered = []string{"wedding", "portrait"}
	req.AccentColor = "#ff0066"

	service := NewService(clients, &mocks.MockFAQRepository{}, mocks.NewMockQueue(), "https://widget.photobot.dev", newTestLogger())

	// Act
	_, err := service.Create(context.Background(), req)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved.ChatbotName != "Luna Bot" {
		t.Errorf("expected provided chatbot name, got '%s'", saved.ChatbotName)
	}
	if len(saved.ServicesOffered) != 2 {
		t.Errorf("expected provided service list, got %v", saved.ServicesOffered)
	}
	if saved.AccentColor != "#ff0066" {
		t.Errorf("expected provided accent color, got '%s'", saved.AccentColor)
	}
}

func TestCreate_SavesCustomFAQsWithSplitKeywords(t *testing.T) {
	// Arrange
	var savedFAQs []domain.FAQEntry
	faqs := &mocks.MockFAQRepository{
		SaveAllFunc: func(ctx context.Context, entries []domain.FAQEntry) error {
			savedFAQs = entries
			return nil
		},
	}

	req := validRequest()
	req.CustomFAQs = []CustomFAQ{
		{Question: "Do you travel?", Answer: "Yes, worldwide.", Keywords: "travel, destination , abroad"},
		{Question: "", Answer: "dropped"},
	}

	service := NewService(&mocks.MockClientRepository{}, faqs, mocks.NewMockQueue(), "https://widget.photobot.dev", newTestLogger())

	// Act
	_, err := service.Create(context.Background(), req)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(savedFAQs) != 1 {
		t.Fatalf("expected 1 FAQ entry, got %d", len(savedFAQs))
	}

	entry := savedFAQs[0]
	if !entry.IsCustom {
		t.Error("expected entry flagged as custom")
	}
	if len(entry.Keywords) != 3 {
		t.Fatalf("expected 3 keywords, got %v", entry.Keywords)
	}
	if entry.Keywords[1] != "destination" {
		t.Errorf("expected trimmed keyword, got '%s'", entry.Keywords[1])
	}
}

func TestCreate_PublishesClientCreatedEvent(t *testing.T) {
	// Arrange
	mq := mocks.NewMockQueue()
	service := NewService(&mocks.MockClientRepository{}, &mocks.MockFAQRepository{}, mq, "https://widget.photobot.dev", newTestLogger())

	// Act
	_, err := service.Create(context.Background(), validRequest())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mq.Published[SubjectClientCreated]) != 1 {
		t.Errorf("expected one %s event, got %d", SubjectClientCreated, len(mq.Published[SubjectClientCreated]))
	}
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	service := NewService(&mocks.MockClientRepository{}, &mocks.MockFAQRepository{}, mocks.NewMockQueue(), "https://widget.photobot.dev", newTestLogger())

	_, err := service.Create(context.Background(), &Request{BusinessName: "Luna"})

	if err == nil {
		t.Fatal("expected validation error")
	}
}
