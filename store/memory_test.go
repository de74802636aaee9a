// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/pollify/pollify/models"
)

func newTestPoll(id string) *models.Poll {
	return models.NewPoll(id, "Lunch?", []string{"Pizza", "Tacos"}, false)
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if err := st.Create(ctx, newTestPoll("abc12345")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	poll, err := st.Get(ctx, "abc12345")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if poll.Question != "Lunch?" {
		t.Errorf("expected question %q, got %q", "Lunch?", poll.Question)
	}
	if len(poll.Votes) != 2 || poll.Votes[0] != 0 || poll.Votes[1] != 0 {
		t.Errorf("expected zeroed counters for both options, got %v", poll.Votes)
	}
}

func TestMemoryStore_CreateDuplicate(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if err := st.Create(ctx, newTestPoll("abc12345")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	err := st.Create(ctx, newTestPoll("abc12345"))
	if !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	st := NewMemoryStore()
	_, err := st.Get(context.Background(), "nope1234")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	st.Create(ctx, newTestPoll("abc12345"))

	poll, _ := st.Get(ctx, "abc12345")
	poll.Votes[0] = 999
	poll.Options[0] = "mutated"

	fresh, _ := st.Get(ctx, "abc12345")
	if fresh.Votes[0] != 0 {
		t.Error("mutating a returned poll leaked into stored counters")
	}
	if fresh.Options[0] != "Pizza" {
		t.Error("mutating a returned poll leaked into stored options")
	}
}

func TestMemoryStore_ApplyVote(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	st.Create(ctx, newTestPoll("abc12345"))

	if err := st.ApplyVote(ctx, "abc12345", []int{0}, "voter-a"); err != nil {
		t.Fatalf("ApplyVote failed: %v", err)
	}

	poll, _ := st.Get(ctx, "abc12345")
	if poll.Votes[0] != 1 || poll.Votes[1] != 0 {
		t.Errorf("expected {0:1, 1:0}, got %v", poll.Votes)
	}

	has, err := st.HasVoted(ctx, "abc12345", "voter-a")
	if err != nil || !has {
		t.Errorf("expected voter-a recorded, got has=%v err=%v", has, err)
	}
	has, err = st.HasVoted(ctx, "abc12345", "voter-b")
	if err != nil || has {
		t.Errorf("expected voter-b not recorded, got has=%v err=%v", has, err)
	}
}

func TestMemoryStore_ApplyVoteDuplicate(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	st.Create(ctx, newTestPoll("abc12345"))

	st.ApplyVote(ctx, "abc12345", []int{0}, "voter-a")
	err := st.ApplyVote(ctx, "abc12345", []int{1}, "voter-a")
	if !errors.Is(err, ErrAlreadyVoted) {
		t.Errorf("expected ErrAlreadyVoted, got %v", err)
	}

	// The rejected ballot must not change any counter
	poll, _ := st.Get(ctx, "abc12345")
	if poll.Votes[0] != 1 || poll.Votes[1] != 0 {
		t.Errorf("rejected ballot changed counters: %v", poll.Votes)
	}
}

func TestMemoryStore_ApplyVoteUnknownPoll(t *testing.T) {
	st := NewMemoryStore()
	err := st.ApplyVote(context.Background(), "nope1234", []int{0}, "voter-a")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestMemoryStore_ConcurrentDistinctVoters checks that no update is lost
// when many voters pick the same option at once.
func TestMemoryStore_ConcurrentDistinctVoters(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	st.Create(ctx, newTestPoll("abc12345"))

	numVoters := 50
	var wg sync.WaitGroup
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			voterID := fmt.Sprintf("voter-%d", n)
			if err := st.ApplyVote(ctx, "abc12345", []int{0}, voterID); err != nil {
				t.Errorf("ApplyVote for %s failed: %v", voterID, err)
			}
		}(i)
	}
	wg.Wait()

	poll, _ := st.Get(ctx, "abc12345")
	if poll.Votes[0] != numVoters {
		t.Errorf("expected %d votes for option 0, got %d", numVoters, poll.Votes[0])
	}
}

// TestMemoryStore_ConcurrentSameVoter checks the check-then-act race:
// of N simultaneous ballots from one voter, exactly one is accepted.
func TestMemoryStore_ConcurrentSameVoter(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	st.Create(ctx, newTestPoll("abc12345"))

	numAttempts := 20
	var accepted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := st.ApplyVote(ctx, "abc12345", []int{0}, "double-clicker")
			if err == nil {
				accepted.Add(1)
			} else if !errors.Is(err, ErrAlreadyVoted) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if accepted.Load() != 1 {
		t.Errorf("expected exactly 1 accepted ballot, got %d", accepted.Load())
	}
	poll, _ := st.Get(ctx, "abc12345")
	if poll.Votes[0] != 1 {
		t.Errorf("expected 1 vote for option 0, got %d", poll.Votes[0])
	}
}
