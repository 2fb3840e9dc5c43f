package postgres

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/ports"
)

type ConversationRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewConversationRepository(db *gorm.DB, log *zap.Logger) ports.ConversationRepository {
	return &ConversationRepository{
		db:  db,
		log: log,
	}
}

func (r *ConversationRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	return r.db.WithContext(ctx).Create(conv).Error
}

func (r *ConversationRepository) FindOpen(ctx context.Context, clientID, visitorID string) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND visitor_id = ? AND completed = ?", clientID, visitorID, false).
		Order("started_at DESC").
		First(&conv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}

func (r *ConversationRepository) UpdateTurn(ctx context.Context, id string, state domain.State, data domain.CollectedData, lastMessageAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Conversation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_state":   state,
			"collected_data":  data,
			"last_message_at": lastMessageAt,
		}).Error
}

func (r *ConversationRepository) MarkCompleted(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Conversation{}).
		Where("id = ?", id).
		Update("completed", true).Error
}
