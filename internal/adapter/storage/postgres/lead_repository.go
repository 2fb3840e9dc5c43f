package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/techmayne/photobot/internal/domain"
	"github.com/techmayne/photobot/internal/ports"
)

type LeadRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewLeadRepository(db *gorm.DB, log *zap.Logger) ports.LeadRepository {
	return &LeadRepository{
		db:  db,
		log: log,
	}
}

func (r *LeadRepository) Save(ctx context.Context, lead *domain.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) FindByClientID(ctx context.Context, clientID string) ([]domain.Lead, error) {
	var leads []domain.Lead
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}
