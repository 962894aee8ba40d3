// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Plain TEXT columns keep the schema identical on PostgreSQL and SQLite
var schema = []string{
	`CREATE TABLE IF NOT EXISTS submission (
    id TEXT PRIMARY KEY,
    inputs_hash TEXT NOT NULL,
    token_count INTEGER NOT NULL,
    dropped_count INTEGER NOT NULL,
    ip_hash TEXT,
    user_agent TEXT,
    payload TEXT NOT NULL,
    created_at TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_submission_created_at ON submission(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_submission_inputs_hash ON submission(inputs_hash)`,
}
