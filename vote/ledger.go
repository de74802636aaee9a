// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"context"
	"errors"
	"fmt"

	"github.com/pollify/pollify/models"
	"github.com/pollify/pollify/store"
)

var (
	// ErrInvalidBallot marks a ballot rejected before it reaches the
	// store: empty, out-of-range index, repeated index, or multiple
	// selections on a single-choice poll.
	ErrInvalidBallot = errors.New("invalid ballot")

	// ErrMissingVoterID marks a submission without a voter identifier.
	ErrMissingVoterID = errors.New("voter ID required")
)

// Ledger decides whether a ballot is admissible and applies it exactly
// once per voter. Validation happens here; the store's ApplyVote closes
// the duplicate-vote race.
type Ledger struct {
	store store.PollStore
}

func NewLedger(st store.PollStore) *Ledger {
	return &Ledger{store: st}
}

// Submit records one voter's ballot. Checks run in order: the poll must
// exist, the ballot must be valid against the poll's options, the voter
// ID must be present, and the voter must not have voted before. The
// last check and the counter increments are one atomic store operation.
func (l *Ledger) Submit(ctx context.Context, pollID string, optionIndices []int, voterID string) error {
	poll, err := l.store.Get(ctx, pollID)
	if err != nil {
		return err
	}
	if err := validateBallot(poll, optionIndices); err != nil {
		return err
	}
	if voterID == "" {
		return ErrMissingVoterID
	}
	return l.store.ApplyVote(ctx, pollID, optionIndices, voterID)
}

// HasVoted reports whether the voter is already recorded for the poll.
func (l *Ledger) HasVoted(ctx context.Context, pollID, voterID string) (bool, error) {
	if voterID == "" {
		return false, ErrMissingVoterID
	}
	return l.store.HasVoted(ctx, pollID, voterID)
}

func validateBallot(poll *models.Poll, optionIndices []int) error {
	if len(optionIndices) == 0 {
		return fmt.Errorf("%w: no options selected", ErrInvalidBallot)
	}
	if !poll.MultipleChoice && len(optionIndices) > 1 {
		return fmt.Errorf("%w: poll allows a single selection", ErrInvalidBallot)
	}
	seen := make(map[int]bool, len(optionIndices))
	for _, idx := range optionIndices {
		if idx < 0 || idx >= len(poll.Options) {
			return fmt.Errorf("%w: option index %d out of range", ErrInvalidBallot, idx)
		}
		if seen[idx] {
			return fmt.Errorf("%w: option index %d selected twice", ErrInvalidBallot, idx)
		}
		seen[idx] = true
	}
	return nil
}
