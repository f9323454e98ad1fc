package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer.
type Storages struct {
	UserRepository  UserRepository
	AssetRepository AssetRepository

	db *DB
}

// NewStorages opens the database configured in cfg, applies migrations and
// constructs the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	logger.Info().Str("dialect", db.Dialect()).Msg("database migrated")

	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		AssetRepository: NewAssetRepository(db, logger),
		db:              db,
	}, nil
}

// Ping checks that the underlying database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
