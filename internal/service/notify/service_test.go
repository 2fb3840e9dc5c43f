package notify

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func TestNotifyNewLead_SendsTemplate(t *testing.T) {
	// Arrange
	sentTo := ""
	sentTemplate := ""
	email := &mocks.MockEmailService{
		SendTemplateFunc: func(ctx context.Context, to, templateName string, data map[string]interface{}) error {
			sentTo = to
			sentTemplate = templateName
			return nil
		},
	}

	service := NewService(email, "admin@photobot.dev", newTestLogger())
	client := &domain.Client{
		ID:                "client-1",
		BusinessName:      "Luna Photography",
		NotificationEmail: "owner@lunaphoto.com",
	}
	lead := &domain.Lead{Name: "Dana", Email: "dana@client.com", EventType: "wedding"}

	// Act
	err := service.NotifyNewLead(context.Background(), client, lead)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sentTo != "owner@lunaphoto.com" {
		t.Errorf("expected tenant notification email, got '%s'", sentTo)
	}
	if sentTemplate != "lead_notification" {
		t.Errorf("expected lead_notification template, got '%s'", sentTemplate)
	}
}

func TestNotifyNewLead_SkipsTestRecipients(t *testing.T) {
	for _, addr := range []string{"demo@photobot.dev", "mytest@gmail.com", "user@example.com", "noreply@site.com"} {
		sent := false
		email := &mocks.MockEmailService{
			SendTemplateFunc: func(ctx context.Context, to, templateName string, data map[string]interface{}) error {
				sent = true
				return nil
			},
		}

		service := NewService(email, "admin@photobot.dev", newTestLogger())
		client := &domain.Client{ID: "client-1", NotificationEmail: addr}

		err := service.NotifyNewLead(context.Background(), client, &domain.Lead{Name: "Dana"})

		if err != nil {
			t.Fatalf("%s: expected no error, got %v", addr, err)
		}
		if sent {
			t.Errorf("%s: expected send skipped for test recipient", addr)
		}
	}
}

func TestNotifyNewLead_MissingRecipientIsNoOp(t *testing.T) {
	email := &mocks.MockEmailService{
		SendTemplateFunc: func(ctx context.Context, to, templateName string, data map[string]interface{}) error {
			t.Error("no send expected without a notification email")
			return nil
		},
	}

	service := NewService(email, "admin@photobot.dev", newTestLogger())

	err := service.NotifyNewLead(context.Background(), &domain.Client{ID: "client-1"}, &domain.Lead{})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestNotifyNewClient_SendsToAdmin(t *testing.T) {
	// Arrange
	sentTo := ""
	email := &mocks.MockEmailService{
		SendTemplateFunc: func(ctx context.Context, to, templateName string, data map[string]interface{}) error {
			sentTo = to
			return nil
		},
	}

	service := NewService(email, "admin@photobot.dev", newTestLogger())
	client := &domain.Client{ID: "client-1", BusinessName: "Luna Photography"}

	// Act
	err := service.NotifyNewClient(context.Background(), client)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sentTo != "admin@photobot.dev" {
		t.Errorf("expected admin recipient, got '%s'", sentTo)
	}
}

func TestNotifyNewClient_NoAdminConfigured(t *testing.T) {
	email := &mocks.MockEmailService{
		SendTemplateFunc: func(ctx context.Context, to, templateName string, data map[string]interface{}) error {
			t.Error("no send expected without an admin email")
			return nil
		},
	}

	service := NewService(email, "", newTestLogger())

	if err := service.NotifyNewClient(context.Background(), &domain.Client{ID: "client-1"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
