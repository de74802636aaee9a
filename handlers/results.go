// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pollify/pollify/middleware"
	"github.com/pollify/pollify/store"
	"github.com/pollify/pollify/vote"
)

type ResultsHandler struct {
	agg *vote.Aggregator
}

func NewResultsHandler(agg *vote.Aggregator) *ResultsHandler {
	return &ResultsHandler{agg: agg}
}

// GetResults handles GET /polls/{id}/results
// Read-only; live result pages poll it every few seconds.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	summary, err := h.agg.Results(r.Context(), pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to aggregate results", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}
