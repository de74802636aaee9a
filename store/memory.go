// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/pollify/pollify/models"
)

// MemoryStore keeps polls in process memory. It backs tests and
// single-process deployments that don't need durability.
type MemoryStore struct {
	mu     sync.Mutex
	polls  map[string]*models.Poll
	voters map[string]map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		polls:  make(map[string]*models.Poll),
		voters: make(map[string]map[string]struct{}),
	}
}

func (s *MemoryStore) Create(ctx context.Context, poll *models.Poll) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.polls[poll.ID]; exists {
		return ErrExists
	}
	s.polls[poll.ID] = clonePoll(poll)
	s.voters[poll.ID] = make(map[string]struct{})
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	poll, ok := s.polls[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clonePoll(poll), nil
}

func (s *MemoryStore) ApplyVote(ctx context.Context, id string, optionIndices []int, voterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	poll, ok := s.polls[id]
	if !ok {
		return ErrNotFound
	}

	// The lock spans the membership check and the increments, so a
	// concurrent duplicate from the same voter cannot pass both.
	voted := s.voters[id]
	if _, dup := voted[voterID]; dup {
		return ErrAlreadyVoted
	}
	for _, idx := range optionIndices {
		poll.Votes[idx]++
	}
	voted[voterID] = struct{}{}
	return nil
}

func (s *MemoryStore) HasVoted(ctx context.Context, id string, voterID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	voted, ok := s.voters[id]
	if !ok {
		return false, ErrNotFound
	}
	_, has := voted[voterID]
	return has, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// clonePoll copies the poll so callers can't reach stored state through
// the Votes map or Options slice.
func clonePoll(p *models.Poll) *models.Poll {
	votes := make(map[int]int, len(p.Votes))
	for i, c := range p.Votes {
		votes[i] = c
	}
	options := make([]string, len(p.Options))
	copy(options, p.Options)

	clone := *p
	clone.Votes = votes
	clone.Options = options
	return &clone
}
