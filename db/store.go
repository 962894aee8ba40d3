// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/bfhl/models"
)

var (
	ErrNotFound          = errors.New("submission not found")
	ErrUnsupportedDriver = errors.New("unsupported database type")
)

// timestamps are stored as fixed-width UTC text so they sort lexically
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store persists submissions in PostgreSQL or SQLite
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database, verifies the connection and creates the schema
func Open(dbType, url string) (*Store, error) {
	var driver string
	switch dbType {
	case "postgres":
		driver = "postgres"
	case "sqlite":
		driver = "sqlite"
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, dbType)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if driver == "sqlite" {
		// SQLite allows one writer; serialize through a single connection
		conn.SetMaxOpenConns(1)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Store{db: conn, driver: driver}, nil
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the connection pool, mainly for tests
func (s *Store) DB() *sql.DB {
	return s.db
}

// rebind turns ? placeholders into $1, $2, ... for PostgreSQL
func (s *Store) rebind(query string) string {
	if s.driver != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Record inserts a submission
func (s *Store) Record(ctx context.Context, sub models.Submission) error {
	payload, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("failed to encode submission payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO submission (id, inputs_hash, token_count, dropped_count, ip_hash, user_agent, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), sub.ID, sub.InputsHash, sub.TokenCount, sub.DroppedCount, sub.IPHash, sub.UserAgent,
		string(payload), sub.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}

	return nil
}

// Get returns one submission by ID, or ErrNotFound
func (s *Store) Get(ctx context.Context, id string) (models.Submission, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, inputs_hash, token_count, dropped_count, ip_hash, user_agent, payload, created_at
		FROM submission
		WHERE id = ?
	`), id)

	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Submission{}, ErrNotFound
	}
	if err != nil {
		return models.Submission{}, err
	}
	return sub, nil
}

// Recent returns up to limit submissions, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]models.Submission, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, inputs_hash, token_count, dropped_count, ip_hash, user_agent, payload, created_at
		FROM submission
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	subs := []models.Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}

	return subs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(sc scanner) (models.Submission, error) {
	var (
		sub       models.Submission
		ipHash    sql.NullString
		userAgent sql.NullString
		payload   string
		createdAt string
	)

	err := sc.Scan(&sub.ID, &sub.InputsHash, &sub.TokenCount, &sub.DroppedCount,
		&ipHash, &userAgent, &payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Submission{}, err
	}
	if err != nil {
		return models.Submission{}, fmt.Errorf("failed to scan submission: %w", err)
	}

	if ipHash.Valid {
		sub.IPHash = &ipHash.String
	}
	if userAgent.Valid {
		sub.UserAgent = &userAgent.String
	}

	if err := json.Unmarshal([]byte(payload), &sub.Payload); err != nil {
		return models.Submission{}, fmt.Errorf("failed to decode submission %s payload: %w", sub.ID, err)
	}

	sub.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return models.Submission{}, fmt.Errorf("failed to parse submission %s time: %w", sub.ID, err)
	}

	return sub, nil
}
