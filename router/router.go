// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/pollify/pollify/handlers"
	"github.com/pollify/pollify/middleware"
	"github.com/pollify/pollify/store"
	"github.com/pollify/pollify/vote"
)

func NewRouter(st store.PollStore) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire the core onto the store
	ledger := vote.NewLedger(st)
	agg := vote.NewAggregator(st)

	pollHandler := handlers.NewPollHandler(st)
	voteHandler := handlers.NewVoteHandler(ledger)
	resultsHandler := handlers.NewResultsHandler(agg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"message": "Pollify API is running",
		})
	})

	// Poll management
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))

	// Voting
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(voteHandler.SubmitVote))
	mux.HandleFunc("POST /polls/{id}/check-vote", middleware.WithLogging(voteHandler.CheckVote))

	// Results
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Pollify API v1"))
	})

	return mux
}
