package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/migrations"
)

// ErrorClassificator maps driver-specific errors onto the conditions the
// repositories care about.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
	// IsCheckViolation reports whether err is a CHECK constraint violation.
	IsCheckViolation(err error) bool
}

// DB wraps a *sql.DB together with the SQL dialect it speaks.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database selected by cfg.DSN: PostgreSQL for
// "postgres://" and "postgresql://" URLs, SQLite for anything else.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Dialect returns the migrations dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}

	return nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
