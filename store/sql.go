// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/pollify/pollify/models"
)

// SQLStore persists polls in PostgreSQL or SQLite through database/sql.
// The schema uses $1-style placeholders, which both lib/pq and
// modernc.org/sqlite accept, so the queries are shared.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens the database, verifies the connection, and creates the
// schema. driver is "postgres" or "sqlite".
func OpenSQL(driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	st, err := NewSQLStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// NewSQLStore wraps an existing connection and ensures the schema exists.
func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// Safe to apply multiple times - uses IF NOT EXISTS.
const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    multiple_choice BOOLEAN NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Options, one row per option index; vote_count only ever grows
CREATE TABLE IF NOT EXISTS poll_option (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    idx INTEGER NOT NULL,
    label TEXT NOT NULL,
    vote_count INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (poll_id, idx)
);

-- Voters; the primary key doubles as the one-vote-per-voter guarantee
CREATE TABLE IF NOT EXISTS poll_voter (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    voted_at TIMESTAMP NOT NULL,
    PRIMARY KEY (poll_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_poll_option_poll_id ON poll_option(poll_id);
CREATE INDEX IF NOT EXISTS idx_poll_voter_poll_id ON poll_voter(poll_id);
`

func (s *SQLStore) Create(ctx context.Context, poll *models.Poll) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, question, multiple_choice, created_at)
		VALUES ($1, $2, $3, $4)
	`, poll.ID, poll.Question, poll.MultipleChoice, poll.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrExists
		}
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	for idx, label := range poll.Options {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO poll_option (poll_id, idx, label, vote_count)
			VALUES ($1, $2, $3, 0)
		`, poll.ID, idx, label)
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit poll: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (*models.Poll, error) {
	poll := models.Poll{ID: id}
	err := s.db.QueryRowContext(ctx, `
		SELECT question, multiple_choice, created_at FROM poll WHERE id = $1
	`, id).Scan(&poll.Question, &poll.MultipleChoice, &poll.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, label, vote_count FROM poll_option WHERE poll_id = $1 ORDER BY idx
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	poll.Votes = make(map[int]int)
	for rows.Next() {
		var idx, count int
		var label string
		if err := rows.Scan(&idx, &label, &count); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		poll.Options = append(poll.Options, label)
		poll.Votes[idx] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	return &poll, nil
}

func (s *SQLStore) ApplyVote(ctx context.Context, id string, optionIndices []int, voterID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM poll WHERE id = $1`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query poll: %w", err)
	}

	// The PRIMARY KEY on (poll_id, voter_id) is the atomic test-and-set:
	// of two concurrent inserts for the same voter, exactly one commits.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll_voter (poll_id, voter_id, voted_at)
		VALUES ($1, $2, $3)
	`, id, voterID, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyVoted
		}
		return fmt.Errorf("failed to record voter: %w", err)
	}

	for _, idx := range optionIndices {
		res, err := tx.ExecContext(ctx, `
			UPDATE poll_option SET vote_count = vote_count + 1
			WHERE poll_id = $1 AND idx = $2
		`, id, idx)
		if err != nil {
			return fmt.Errorf("failed to increment counter: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("no counter row for option index %d", idx)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vote: %w", err)
	}
	return nil
}

func (s *SQLStore) HasVoted(ctx context.Context, id string, voterID string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM poll WHERE id = $1`, id).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("failed to query poll: %w", err)
	}

	var has bool
	err = s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM poll_voter WHERE poll_id = $1 AND voter_id = $2)
	`, id, voterID).Scan(&has)
	if err != nil {
		return false, fmt.Errorf("failed to query voter: %w", err)
	}
	return has, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// isUniqueViolation matches the constraint-violation message of both
// drivers. Neither exposes a stable error type for this without
// importing driver internals.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}
