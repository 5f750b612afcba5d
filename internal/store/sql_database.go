package store

import (
	"database/sql"

	"github.com/reznik99/cloud-storage-client/internal/logger"
	"github.com/reznik99/cloud-storage-client/migrations"
)

// DB wraps the raw connection so repositories share one handle and the
// migration entry point.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations to the local cache.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
