package ports

import (
	"context"
	"time"

	"github.com/techmayne/photobot/internal/domain"
)

type ClientRepository interface {
	Save(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	// FindByToken resolves a widget token to an active client.
	FindByToken(ctx context.Context, token string) (*domain.Client, error)
}

type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) error
	// FindOpen returns the newest non-completed conversation for the
	// (client, visitor) pair, or nil when none exists.
	FindOpen(ctx context.Context, clientID, visitorID string) (*domain.Conversation, error)
	// UpdateTurn persists the post-turn session snapshot.
	UpdateTurn(ctx context.Context, id string, state domain.State, data domain.CollectedData, lastMessageAt time.Time) error
	MarkCompleted(ctx context.Context, id string) error
}

type FAQRepository interface {
	// ListByClient returns entries in stored order (first match wins).
	ListByClient(ctx context.Context, clientID string) ([]domain.FAQEntry, error)
	SaveAll(ctx context.Context, entries []domain.FAQEntry) error
}

type LeadRepository interface {
	Save(ctx context.Context, lead *domain.Lead) error
	FindByClientID(ctx context.Context, clientID string) ([]domain.Lead, error)
}

type MessageRepository interface {
	Save(ctx context.Context, msg *domain.Message) error
	ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error)
}
