package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed.
// The board is stored as independently keyed records (one for the column
// sequence, one for the flat task sequence) rather than normalized tables:
// order is positional, and every save rewrites the full sequence anyway.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS records (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
