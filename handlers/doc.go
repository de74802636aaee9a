// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pollify API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - PollHandler: poll creation and retrieval (store.PollStore)
  - VoteHandler: vote submission and voted-check (vote.Ledger)
  - ResultsHandler: results retrieval (vote.Aggregator)

# Voting Flow

	POST /polls                   → CreatePoll (returns pollId)
	GET  /polls/{id}              → GetPoll
	POST /polls/{id}/vote         → SubmitVote
	POST /polls/{id}/check-vote   → CheckVote
	GET  /polls/{id}/results      → GetResults

Voter IDs are opaque client-generated tokens sent in the request body.
They are used solely for duplicate-vote detection and never appear in
any response.

# Error Mapping

	store.ErrNotFound      → 404
	vote.ErrInvalidBallot  → 400
	vote.ErrMissingVoterID → 400
	store.ErrAlreadyVoted  → 400
	anything else          → 500 (logged)

ID collisions on create are retried internally with a fresh ID before
giving up with a 500.
*/
package handlers
