// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"context"

	"github.com/pollify/pollify/models"
	"github.com/pollify/pollify/store"
)

// Aggregator projects a stored poll into a display-ready summary. It
// never mutates state and is safe to call at the few-second refresh
// cadence of live result pages.
type Aggregator struct {
	store store.PollStore
}

func NewAggregator(st store.PollStore) *Aggregator {
	return &Aggregator{store: st}
}

// Results returns the poll's tallies and total.
func (a *Aggregator) Results(ctx context.Context, pollID string) (*models.Summary, error) {
	poll, err := a.store.Get(ctx, pollID)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range poll.Votes {
		total += count
	}

	return &models.Summary{
		Question:       poll.Question,
		Options:        poll.Options,
		Votes:          poll.Votes,
		TotalVotes:     total,
		MultipleChoice: poll.MultipleChoice,
		CreatedAt:      poll.CreatedAt,
	}, nil
}
