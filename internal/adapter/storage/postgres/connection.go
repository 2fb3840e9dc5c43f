package postgres

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/techmayne/photobot/internal/domain"
)

// NewConnection initializes a PostgreSQL connection using GORM.
func NewConnection(url string, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)

	log.Info("Successfully connected to PostgreSQL")
	return db, nil
}

// RunMigrations keeps the schema in sync with the domain models.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Client{},
		&domain.Conversation{},
		&domain.Message{},
		&domain.FAQEntry{},
		&domain.Lead{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
