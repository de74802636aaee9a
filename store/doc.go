// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls behind a single PollStore interface.

# The Contract

	type PollStore interface {
		Create(ctx, poll) error
		Get(ctx, id) (*models.Poll, error)
		ApplyVote(ctx, id, optionIndices, voterID) error
		HasVoted(ctx, id, voterID) (bool, error)
		Close() error
	}

Create fails with ErrExists instead of overwriting. Get returns
ErrNotFound for an unknown ID. ApplyVote is the only mutation after
creation: it records the voter and increments the selected counters as
one atomic unit, failing with ErrAlreadyVoted on a duplicate voter with
no partial state committed.

# Backends

Three implementations with identical semantics:

  - MemoryStore: map + mutex, for tests and single-process deployments
  - SQLStore: PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite); the
    (poll_id, voter_id) primary key is the duplicate-vote guard
  - RedisStore: hash + voter set per poll; ApplyVote is a preloaded Lua
    script, so the check and the increments run server-side in one step

# Atomicity

Two concurrent ballots from the same voter must yield exactly one
acceptance. A read-check-write sequence in application code races under
retries and double-clicks; every backend therefore pushes the duplicate
check into the same atomic primitive as the write.
*/
package store
