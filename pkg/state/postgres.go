package state

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// PostgresBackend stores sessions in a postgres table via gorm.
type PostgresBackend struct {
	db *gorm.DB
}

var _ Backend = (*PostgresBackend)(nil)

// NewPostgresBackend opens the database and migrates the sessions table.
func NewPostgresBackend(dsn string) (*PostgresBackend, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn cannot be empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	if err := db.AutoMigrate(&Session{}); err != nil {
		return nil, fmt.Errorf("failed to migrate sessions table: %w", err)
	}

	log.Printf("Session storage ready (postgres).")
	return &PostgresBackend{db: db}, nil
}

func (p *PostgresBackend) Get(ctx context.Context, userID int64) (*Session, error) {
	var session Session
	err := p.db.WithContext(ctx).First(&session, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	return &session, nil
}

func (p *PostgresBackend) Put(ctx context.Context, session *Session) error {
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(session).Error
	if err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}
