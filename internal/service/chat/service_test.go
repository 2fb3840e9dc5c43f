package chat

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/mocks"
	"github.com/techmayne/photobot/internal/service/bot"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func activeClient() *domain.Client {
	return &domain.Client{
		ID:           "client-1",
		ClientToken:  "token-1",
		BusinessName: "Luna Photography",
		IsActive:     true,
	}
}

type chatFixture struct {
	service  *Service
	clients  *mocks.MockClientRepository
	convRepo *mocks.MockConversationRepository
	messages *mocks.MockMessageRepository
	cache    *mocks.MockCache
	stored   []*domain.Message
}

func newChatFixture() *chatFixture {
	f := &chatFixture{
		clients:  &mocks.MockClientRepository{},
		convRepo: &mocks.MockConversationRepository{},
		messages: &mocks.MockMessageRepository{},
		cache:    mocks.NewMockCache(),
	}

	f.clients.FindByTokenFunc = func(ctx context.Context, token string) (*domain.Client, error) {
		if token == "token-1" {
			return activeClient(), nil
		}
		return nil, nil
	}
	f.messages.SaveFunc = func(ctx context.Context, msg *domain.Message) error {
		f.stored = append(f.stored, msg)
		return nil
	}

	engine := bot.NewEngine(f.convRepo, &mocks.MockFAQService{}, &mocks.MockLeadService{}, newTestLogger())
	f.service = NewService(f.clients, f.convRepo, f.messages, f.cache, engine, newTestLogger())
	return f
}

func TestHandleMessage_UnknownTokenReturnsNotFound(t *testing.T) {
	// Arrange
	f := newChatFixture()

	// Act
	_, err := f.service.HandleMessage(context.Background(), "bogus", "visitor-1", domain.StartSentinel)

	// Assert
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestHandleMessage_InactiveClientResolvesAsNotFound(t *testing.T) {
	// Arrange
	f := newChatFixture()
	f.clients.FindByTokenFunc = func(ctx context.Context, token string) (*domain.Client, error) {
		client := activeClient()
		client.IsActive = false
		return client, nil
	}

	// Act
	_, err := f.service.HandleMessage(context.Background(), "token-1", "visitor-1", domain.StartSentinel)

	// Assert
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestHandleMessage_StartSentinelIsNeverStored(t *testing.T) {
	// Arrange
	f := newChatFixture()

	// Act
	res, err := f.service.HandleMessage(context.Background(), "token-1", "visitor-1", domain.StartSentinel)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Message == "" {
		t.Error("expected a welcome message")
	}

	for _, msg := range f.stored {
		if msg.Role == domain.MessageRoleUser {
			t.Errorf("start sentinel must not be stored as a user message, got '%s'", msg.Content)
		}
	}
	if len(f.stored) != 1 || f.stored[0].Role != domain.MessageRoleBot {
		t.Errorf("expected exactly one bot message, got %d messages", len(f.stored))
	}
}

func TestHandleMessage_StartSentinelAlwaysRestartsAtWelcome(t *testing.T) {
	// Arrange: an open session parked mid-flow.
	f := newChatFixture()
	f.convRepo.FindOpenFunc = func(ctx context.Context, clientID, visitorID string) (*domain.Conversation, error) {
		return &domain.Conversation{
			ID:            "conv-1",
			ClientID:      clientID,
			VisitorID:     visitorID,
			CurrentState:  domain.StateCollectDate,
			CollectedData: domain.CollectedData{domain.FieldEventType: "wedding"},
		}, nil
	}

	// Act
	res, err := f.service.HandleMessage(context.Background(), "token-1", "visitor-1", domain.StartSentinel)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(res.Buttons) != 3 {
		t.Errorf("expected the main menu greeting, got %+v", res)
	}
}

func TestHandleMessage_CreatesConversationWhenNoneOpen(t *testing.T) {
	// Arrange
	f := newChatFixture()

	var created *domain.Conversation
	f.convRepo.CreateFunc = func(ctx context.Context, conv *domain.Conversation) error {
		created = conv
		return nil
	}

	// Act
	_, err := f.service.HandleMessage(context.Background(), "token-1", "visitor-1", domain.StartSentinel)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if created == nil {
		t.Fatal("expected a conversation created")
	}
	if created.CurrentState != domain.StateWelcome {
		t.Errorf("new conversations start at welcome, got %s", created.CurrentState)
	}
	if created.ClientID != "client-1" || created.VisitorID != "visitor-1" {
		t.Errorf("unexpected conversation identity: %+v", created)
	}
}

func TestHandleMessage_StoresUserAndBotMessages(t *testing.T) {
	// Arrange
	f := newChatFixture()
	f.convRepo.FindOpenFunc = func(ctx context.Context, clientID, visitorID string) (*domain.Conversation, error) {
		return &domain.Conversation{
			ID:            "conv-1",
			ClientID:      clientID,
			VisitorID:     visitorID,
			CurrentState:  domain.StateMainMenu,
			CollectedData: domain.CollectedData{},
		}, nil
	}

	// Act
	_, err := f.service.HandleMessage(context.Background(), "token-1", "visitor-1", domain.ActionAskQuestion)

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(f.stored) != 2 {
		t.Fatalf("expected user + bot messages, got %d", len(f.stored))
	}
	if f.stored[0].Role != domain.MessageRoleUser || f.stored[0].Content != domain.ActionAskQuestion {
		t.Errorf("unexpected user message: %+v", f.stored[0])
	}
	if f.stored[1].Role != domain.MessageRoleBot {
		t.Errorf("unexpected bot message: %+v", f.stored[1])
	}
}

func TestResolveClient_CacheHitSkipsRepository(t *testing.T) {
	// Arrange
	f := newChatFixture()

	cached, _ := json.Marshal(activeClient())
	f.cache.Set(context.Background(), clientCacheKeyPrefix+"token-1", string(cached), 5*time.Minute)

	f.clients.FindByTokenFunc = func(ctx context.Context, token string) (*domain.Client, error) {
		t.Error("repository should not be called on cache hit")
		return nil, nil
	}

	// Act
	client, err := f.service.ResolveClient(context.Background(), "token-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if client.ID != "client-1" {
		t.Errorf("expected cached client, got %+v", client)
	}
}

func TestResolveClient_MissPopulatesCache(t *testing.T) {
	// Arrange
	f := newChatFixture()

	// Act
	_, err := f.service.ResolveClient(context.Background(), "token-1")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, cacheErr := f.cache.Get(context.Background(), clientCacheKeyPrefix+"token-1"); cacheErr != nil {
		t.Error("expected client cached after repository lookup")
	}
}

func TestHandleMessage_TranscriptFailureDoesNotFailTurn(t *testing.T) {
	// Arrange
	f := newChatFixture()
	f.messages.SaveFunc = func(ctx context.Context, msg *domain.Message) error {
		return errors.New("insert failed")
	}

	// Act
	res, err := f.service.HandleMessage(context.Background(), "token-1", "visitor-1", domain.StartSentinel)

	// Assert
	if err != nil {
		t.Fatalf("transcript failures must not fail the turn, got %v", err)
	}
	if res == nil {
		t.Fatal("expected a turn result")
	}
}
