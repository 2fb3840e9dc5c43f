package mocks

import (
	"context"
	"time"

	"github.com/techmayne/photobot/internal/domain"
)

// MockClientRepository is a mock implementation of ClientRepository
type MockClientRepository struct {
	SaveFunc        func(ctx context.Context, client *domain.Client) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.Client, error)
	FindByTokenFunc func(ctx context.Context, token string) (*domain.Client, error)
}

func (m *MockClientRepository) Save(ctx context.Context, client *domain.Client) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, client)
	}
	return nil
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockClientRepository) FindByToken(ctx context.Context, token string) (*domain.Client, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, nil
}

// MockConversationRepository is a mock implementation of ConversationRepository
type MockConversationRepository struct {
	CreateFunc        func(ctx context.Context, conv *domain.Conversation) error
	FindOpenFunc      func(ctx context.Context, clientID, visitorID string) (*domain.Conversation, error)
	UpdateTurnFunc    func(ctx context.Context, id string, state domain.State, data domain.CollectedData, lastMessageAt time.Time) error
	MarkCompletedFunc func(ctx context.Context, id string) error
}

func (m *MockConversationRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, conv)
	}
	return nil
}

func (m *MockConversationRepository) FindOpen(ctx context.Context, clientID, visitorID string) (*domain.Conversation, error) {
	if m.FindOpenFunc != nil {
		return m.FindOpenFunc(ctx, clientID, visitorID)
	}
	return nil, nil
}

func (m *MockConversationRepository) UpdateTurn(ctx context.Context, id string, state domain.State, data domain.CollectedData, lastMessageAt time.Time) error {
	if m.UpdateTurnFunc != nil {
		return m.UpdateTurnFunc(ctx, id, state, data, lastMessageAt)
	}
	return nil
}

func (m *MockConversationRepository) MarkCompleted(ctx context.Context, id string) error {
	if m.MarkCompletedFunc != nil {
		return m.MarkCompletedFunc(ctx, id)
	}
	return nil
}

// MockFAQRepository is a mock implementation of FAQRepository
type MockFAQRepository struct {
	ListByClientFunc func(ctx context.Context, clientID string) ([]domain.FAQEntry, error)
	SaveAllFunc      func(ctx context.Context, entries []domain.FAQEntry) error
}

func (m *MockFAQRepository) ListByClient(ctx context.Context, clientID string) ([]domain.FAQEntry, error) {
	if m.ListByClientFunc != nil {
		return m.ListByClientFunc(ctx, clientID)
	}
	return []domain.FAQEntry{}, nil
}

func (m *MockFAQRepository) SaveAll(ctx context.Context, entries []domain.FAQEntry) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, entries)
	}
	return nil
}

// MockLeadRepository is a mock implementation of LeadRepository
type MockLeadRepository struct {
	SaveFunc           func(ctx context.Context, lead *domain.Lead) error
	FindByClientIDFunc func(ctx context.Context, clientID string) ([]domain.Lead, error)
}

func (m *MockLeadRepository) Save(ctx context.Context, lead *domain.Lead) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, lead)
	}
	return nil
}

func (m *MockLeadRepository) FindByClientID(ctx context.Context, clientID string) ([]domain.Lead, error) {
	if m.FindByClientIDFunc != nil {
		return m.FindByClientIDFunc(ctx, clientID)
	}
	return []domain.Lead{}, nil
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	SaveFunc               func(ctx context.Context, msg *domain.Message) error
	ListByConversationFunc func(ctx context.Context, conversationID string) ([]domain.Message, error)
}

func (m *MockMessageRepository) Save(ctx context.Context, msg *domain.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *MockMessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error) {
	if m.ListByConversationFunc != nil {
		return m.ListByConversationFunc(ctx, conversationID)
	}
	return []domain.Message{}, nil
}
