// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pollify/pollify/ident"
	"github.com/pollify/pollify/middleware"
	"github.com/pollify/pollify/models"
	"github.com/pollify/pollify/store"
)

// createRetries bounds ID regeneration when Create hits a collision.
// With ~41 bits of ID entropy a second attempt is already rare.
const createRetries = 3

type PollHandler struct {
	store store.PollStore
}

func NewPollHandler(st store.PollStore) *PollHandler {
	return &PollHandler{store: st}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := validateCreate(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	for attempt := 0; attempt < createRetries; attempt++ {
		pollID, err := ident.NewPollID()
		if err != nil {
			slog.Error("failed to generate poll ID", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
			return
		}

		poll := models.NewPoll(pollID, req.Question, req.Options, req.MultipleChoice)
		err = h.store.Create(r.Context(), poll)
		if errors.Is(err, store.ErrExists) {
			slog.Warn("poll ID collision, retrying", "poll_id", pollID)
			continue
		}
		if err != nil {
			slog.Error("failed to insert poll", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
			return
		}

		slog.Info("poll created", "poll_id", pollID, "options", len(req.Options))

		middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
			PollID:  pollID,
			Message: "Poll created successfully",
		})
		return
	}

	slog.Error("poll ID collisions exhausted retries")
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create poll")
}

// GetPoll handles GET /polls/{id}
// The response never includes voter IDs; they live only inside the store.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "poll_id is required")
		return
	}

	poll, err := h.store.Get(r.Context(), pollID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}
	if err != nil {
		slog.Error("failed to query poll", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

func validateCreate(req *models.CreatePollRequest) string {
	if strings.TrimSpace(req.Question) == "" {
		return "question is required"
	}
	if len(req.Question) > models.MaxQuestionLength {
		return "question must be at most 200 characters"
	}
	if len(req.Options) < models.MinOptions {
		return "at least 2 options required"
	}
	if len(req.Options) > models.MaxOptions {
		return "at most 5 options allowed"
	}
	for _, label := range req.Options {
		if strings.TrimSpace(label) == "" {
			return "option labels must not be empty"
		}
	}
	return ""
}
