package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const createMarkersSQLite = `
	CREATE TABLE IF NOT EXISTS markers (
		category TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		tags TEXT NULL,
		PRIMARY KEY (category, position)
	);
	`

const createMarkersPostgres = `
	CREATE TABLE IF NOT EXISTS markers (
		category TEXT NOT NULL,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		tags TEXT NULL,
		PRIMARY KEY (category, position)
	);
	`

const createMarkersIndex = `
	CREATE INDEX IF NOT EXISTS idx_markers_name
	ON markers(name);
	`

// Initialize the SQLite database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, createMarkersSQLite, createMarkersIndex)
}

// Initialize the Postgres database schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, createMarkersPostgres, createMarkersIndex)
}

func initSchema(ctx context.Context, db *sql.DB, statements ...string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
