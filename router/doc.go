// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Pollify API.

# Route Registration

NewRouter creates a configured http.ServeMux over a PollStore:

	mux := router.NewRouter(st)

# Endpoints

Health:

	GET /health

Polls:

	POST /polls       - Create poll
	GET  /polls/{id}  - Poll info (no voter IDs)

Voting:

	POST /polls/{id}/vote       - Submit a ballot
	POST /polls/{id}/check-vote - Has this voter voted?

Results:

	GET /polls/{id}/results - Live tallies and totals

# Handler Initialization

The router builds the core on top of the injected store:

	ledger := vote.NewLedger(st)
	agg := vote.NewAggregator(st)

and hands them to the handlers. The store is the only stateful
dependency; everything else is constructed here.
*/
package router
