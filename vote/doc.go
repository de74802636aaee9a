// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package vote implements the vote ledger and the results aggregator.

# Ledger

The ledger validates ballots and delegates the atomic part to the store:

	ledger := vote.NewLedger(st)
	err := ledger.Submit(ctx, pollID, []int{0}, voterID)

Submit's checks, in order:

 1. poll exists (store.ErrNotFound)
 2. ballot is valid (ErrInvalidBallot): non-empty, indices in range,
    no repeats, single selection unless the poll allows multiple
 3. voter ID present (ErrMissingVoterID)
 4. voter has not voted (store.ErrAlreadyVoted)

Steps 4 and the counter increments are one atomic store operation, so a
double-click or retry from the same voter yields exactly one accepted
ballot.

# Aggregator

	agg := vote.NewAggregator(st)
	summary, err := agg.Results(ctx, pollID)

Results is read-only. TotalVotes is the sum of all counters; per-option
percentages are a presentation concern (models.Summary.Percentages).
*/
package vote
