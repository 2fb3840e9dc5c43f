package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/observability/telemetry"
	"github.com/techmayne/photobot/internal/ports"
	"github.com/techmayne/photobot/internal/service/bot"
)

// ErrClientNotFound means the widget token does not resolve to an active
// tenant. Handlers map it to 404.
var ErrClientNotFound = errors.New("client not found")

const (
	clientCacheKeyPrefix = "client:token:"
	clientCacheTTL       = 5 * time.Minute
)

// Service orchestrates one chat turn: tenant lookup, session load or
// create, engine dispatch, transcript logging.
type Service struct {
	clients  ports.ClientRepository
	convRepo ports.ConversationRepository
	messages ports.MessageRepository
	cache    ports.Cache
	engine   *bot.Engine
	log      *zap.Logger
}

func NewService(
	clients ports.ClientRepository,
	convRepo ports.ConversationRepository,
	messages ports.MessageRepository,
	cache ports.Cache,
	engine *bot.Engine,
	log *zap.Logger,
) *Service {
	return &Service{
		clients:  clients,
		convRepo: convRepo,
		messages: messages,
		cache:    cache,
		engine:   engine,
		log:      log,
	}
}

// HandleMessage processes one visitor input and returns the bot's reply.
func (s *Service) HandleMessage(ctx context.Context, clientToken, visitorID, input string) (*domain.TurnResult, error) {
	client, err := s.ResolveClient(ctx, clientToken)
	if err != nil {
		return nil, err
	}

	conv, err := s.loadOpenSession(ctx, client.ID, visitorID)
	if err != nil {
		return nil, err
	}

	isStart := input == domain.StartSentinel
	if isStart {
		// The open sentinel always restarts from welcome, whatever the
		// session last saw, and never enters the transcript.
		conv.CurrentState = domain.StateWelcome
		input = "welcome"
	} else {
		s.storeMessage(ctx, conv.ID, domain.MessageRoleUser, input, nil)
	}

	res, err := s.engine.Turn(ctx, client, conv, input)
	if err != nil {
		return nil, fmt.Errorf("turn failed: %w", err)
	}

	s.storeMessage(ctx, conv.ID, domain.MessageRoleBot, res.Message, res.Meta())

	return res, nil
}

// ResolveClient maps a widget token to its tenant, read-through cached.
// Inactive tenants resolve the same as unknown tokens.
func (s *Service) ResolveClient(ctx context.Context, token string) (*domain.Client, error) {
	key := clientCacheKeyPrefix + token

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			var client domain.Client
			if err := json.Unmarshal([]byte(cached), &client); err == nil {
				return &client, nil
			}
			// Stale or malformed entry: drop it and fall through.
			_ = s.cache.Delete(ctx, key)
		}
	}

	client, err := s.clients.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up client: %w", err)
	}
	if client == nil || !client.IsActive {
		return nil, ErrClientNotFound
	}

	if s.cache != nil {
		if payload, err := json.Marshal(client); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), clientCacheTTL); err != nil {
				s.log.Warn("Failed to cache client config",
					zap.String("client_id", client.ID),
					zap.Error(err),
				)
			}
		}
	}

	return client, nil
}

// loadOpenSession returns the newest non-completed conversation for the
// pair, creating a fresh one when none exists. A completed conversation is
// never reopened.
func (s *Service) loadOpenSession(ctx context.Context, clientID, visitorID string) (*domain.Conversation, error) {
	conv, err := s.convRepo.FindOpen(ctx, clientID, visitorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if conv != nil {
		if conv.CollectedData == nil {
			conv.CollectedData = domain.CollectedData{}
		}
		return conv, nil
	}

	now := time.Now()
	conv = &domain.Conversation{
		ID:            uuid.NewString(),
		ClientID:      clientID,
		VisitorID:     visitorID,
		CurrentState:  domain.StateWelcome,
		CollectedData: domain.CollectedData{},
		StartedAt:     now,
		LastMessageAt: now,
	}
	if err := s.convRepo.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	telemetry.ConversationsStarted.Inc()

	return conv, nil
}

// storeMessage appends a transcript entry. Transcript writes never fail a
// turn.
func (s *Service) storeMessage(ctx context.Context, conversationID string, role domain.MessageRole, content string, meta *domain.MessageMeta) {
	msg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Role:           role,
		Content:        content,
		Metadata:       meta,
		CreatedAt:      time.Now(),
	}
	if err := s.messages.Save(ctx, msg); err != nil {
		s.log.Warn("Failed to store message",
			zap.String("conversation_id", conversationID),
			zap.String("role", string(role)),
			zap.Error(err),
		)
	}
}
