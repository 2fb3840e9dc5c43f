package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/ports"
)

type FAQRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewFAQRepository(db *gorm.DB, log *zap.Logger) ports.FAQRepository {
	return &FAQRepository{
		db:  db,
		log: log,
	}
}

// ListByClient returns entries in insertion order so the first configured
// match wins.
func (r *FAQRepository) ListByClient(ctx context.Context, clientID string) ([]domain.FAQEntry, error) {
	var entries []domain.FAQEntry
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *FAQRepository) SaveAll(ctx context.Context, entries []domain.FAQEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}
