// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pollify/pollify/middleware"
	"github.com/pollify/pollify/models"
	"github.com/pollify/pollify/store"
	"github.com/pollify/pollify/vote"
)

type VoteHandler struct {
	ledger *vote.Ledger
}

func NewVoteHandler(ledger *vote.Ledger) *VoteHandler {
	return &VoteHandler{ledger: ledger}
}

// SubmitVote handles POST /polls/{id}/vote
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := h.ledger.Submit(r.Context(), pollID, req.OptionIndices, req.VoterID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	case errors.Is(err, vote.ErrInvalidBallot):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, vote.ErrMissingVoterID):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Voter ID required")
		return
	case errors.Is(err, store.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusBadRequest, "You have already voted on this poll")
		return
	case err != nil:
		slog.Error("failed to submit vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "options", req.OptionIndices)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitVoteResponse{
		Message: "Vote recorded successfully",
	})
}

// CheckVote handles POST /polls/{id}/check-vote
func (h *VoteHandler) CheckVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	var req models.CheckVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	hasVoted, err := h.ledger.HasVoted(r.Context(), pollID, req.VoterID)
	switch {
	case errors.Is(err, vote.ErrMissingVoterID):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Voter ID required")
		return
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	case err != nil:
		slog.Error("failed to check vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to check vote status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CheckVoteResponse{
		HasVoted: hasVoted,
	})
}
