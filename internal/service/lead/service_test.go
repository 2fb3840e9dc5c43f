package lead

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

func testClient() *domain.Client {
	return &domain.Client{
		ID:                "client-1",
		BusinessName:      "Luna Photography",
		NotificationEmail: "owner@lunaphoto.com",
	}
}

func testData() domain.CollectedData {
	return domain.CollectedData{
		domain.FieldName:      "Dana",
		domain.FieldEmail:     "dana@client.com",
		domain.FieldEventType: "wedding",
	}
}

func TestCapture_SavesLeadAndCompletesConversation(t *testing.T) {
	// Arrange
	ctx := context.Background()

	var saved *domain.Lead
	leadRepo := &mocks.MockLeadRepository{
		SaveFunc: func(ctx context.Context, lead *domain.Lead) error {
			saved = lead
			return nil
		},
	}

	completed := ""
	convRepo := &mocks.MockConversationRepository{
		MarkCompletedFunc: func(ctx context.Context, id string) error {
			completed = id
			return nil
		},
	}

	notified := false
	notifier := &mocks.MockNotifier{
		NotifyNewLeadFunc: func(ctx context.Context, client *domain.Client, lead *domain.Lead) error {
			notified = true
			return nil
		},
	}

	mq := mocks.NewMockQueue()
	service := NewService(leadRepo, convRepo, notifier, mq, newTestLogger())

	// Act
	lead, err := service.Capture(ctx, testClient(), "conv-1", testData())

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if saved == nil || saved.Name != "Dana" || saved.Email != "dana@client.com" {
		t.Errorf("unexpected saved lead: %+v", saved)
	}
	if lead.ID == "" {
		t.Error("expected a generated lead ID")
	}
	if completed != "conv-1" {
		t.Errorf("expected conversation conv-1 completed, got '%s'", completed)
	}
	if !notified {
		t.Error("expected lead notification")
	}
	if len(mq.Published[SubjectLeadCreated]) != 1 {
		t.Errorf("expected one %s event, got %d", SubjectLeadCreated, len(mq.Published[SubjectLeadCreated]))
	}
}

func TestCapture_SaveFailurePropagatesAndSkipsFanOut(t *testing.T) {
	// Arrange
	ctx := context.Background()

	leadRepo := &mocks.MockLeadRepository{
		SaveFunc: func(ctx context.Context, lead *domain.Lead) error {
			return errors.New("insert failed")
		},
	}

	convRepo := &mocks.MockConversationRepository{
		MarkCompletedFunc: func(ctx context.Context, id string) error {
			t.Error("conversation must not be completed when the insert fails")
			return nil
		},
	}

	notifier := &mocks.MockNotifier{
		NotifyNewLeadFunc: func(ctx context.Context, client *domain.Client, lead *domain.Lead) error {
			t.Error("no notification when the insert fails")
			return nil
		},
	}

	service := NewService(leadRepo, convRepo, notifier, mocks.NewMockQueue(), newTestLogger())

	// Act
	lead, err := service.Capture(ctx, testClient(), "conv-1", testData())

	// Assert
	if err == nil {
		t.Fatal("expected error")
	}
	if lead != nil {
		t.Error("expected nil lead on failure")
	}
}

func TestCapture_NotificationFailureIsNonFatal(t *testing.T) {
	// Arrange
	ctx := context.Background()

	leadRepo := &mocks.MockLeadRepository{}
	convRepo := &mocks.MockConversationRepository{}
	notifier := &mocks.MockNotifier{
		NotifyNewLeadFunc: func(ctx context.Context, client *domain.Client, lead *domain.Lead) error {
			return errors.New("mail outage")
		},
	}

	service := NewService(leadRepo, convRepo, notifier, mocks.NewMockQueue(), newTestLogger())

	// Act
	lead, err := service.Capture(ctx, testClient(), "conv-1", testData())

	// Assert
	if err != nil {
		t.Fatalf("notification failure must not fail the capture, got %v", err)
	}
	if lead == nil {
		t.Fatal("expected a lead")
	}
}

func TestCapture_WorksWithoutQueue(t *testing.T) {
	// Arrange
	service := NewService(
		&mocks.MockLeadRepository{},
		&mocks.MockConversationRepository{},
		&mocks.MockNotifier{},
		nil,
		newTestLogger(),
	)

	// Act
	lead, err := service.Capture(context.Background(), testClient(), "conv-1", testData())

	// Assert
	if err != nil {
		t.Fatalf("expected no error without a queue, got %v", err)
	}
	if lead == nil {
		t.Fatal("expected a lead")
	}
}
