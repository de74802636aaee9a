// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/pollify/pollify/models"
)

var (
	// ErrExists is returned by Create when the poll ID is already taken.
	ErrExists = errors.New("poll already exists")

	// ErrNotFound is returned when no poll matches the given ID. Absence
	// is a normal outcome, mapped to 404 by the gateway.
	ErrNotFound = errors.New("poll not found")

	// ErrAlreadyVoted is returned by ApplyVote when the voter ID is
	// already recorded for the poll.
	ErrAlreadyVoted = errors.New("voter has already voted")
)

// PollStore is the single storage contract shared by every backend.
//
// ApplyVote must be atomic per poll: the duplicate-voter check and the
// counter increments form one unit, so two concurrent submissions from
// the same voter yield exactly one acceptance, and submissions from
// distinct voters are never lost. Each backend closes this race its own
// way: the memory store holds a lock across check and mutation, the SQL
// store relies on a UNIQUE constraint inside a transaction, and the
// Redis store runs a server-side Lua script.
type PollStore interface {
	// Create inserts a new poll keyed by its ID, or fails with ErrExists.
	// It never overwrites.
	Create(ctx context.Context, poll *models.Poll) error

	// Get returns the poll or ErrNotFound. The returned poll is a copy;
	// mutating it does not affect stored state.
	Get(ctx context.Context, id string) (*models.Poll, error)

	// ApplyVote atomically increments the counter for every index in
	// optionIndices and records voterID. Fails with ErrNotFound or
	// ErrAlreadyVoted; on failure no counter changes.
	ApplyVote(ctx context.Context, id string, optionIndices []int, voterID string) error

	// HasVoted reports whether voterID is recorded for the poll.
	HasVoted(ctx context.Context, id string, voterID string) (bool, error)

	// Close releases any underlying connections.
	Close() error
}
