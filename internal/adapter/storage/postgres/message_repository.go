package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/ports"
)

type MessageRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMessageRepository(db *gorm.DB, log *zap.Logger) ports.MessageRepository {
	return &MessageRepository{
		db:  db,
		log: log,
	}
}

func (r *MessageRepository) Save(ctx context.Context, msg *domain.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID string) ([]domain.Message, error) {
	var messages []domain.Message
	err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
