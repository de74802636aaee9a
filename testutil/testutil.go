// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/pollify/pollify/ident"
	"github.com/pollify/pollify/models"
	"github.com/pollify/pollify/store"
)

// NewStore returns a fresh in-memory store. Handler tests run against
// it; the SQL and Redis backends implement the same contract.
func NewStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	return store.NewMemoryStore()
}

// CreatePoll inserts a poll and returns its ID.
func CreatePoll(t *testing.T, st store.PollStore, question string, options []string, multipleChoice bool) string {
	t.Helper()

	pollID, err := ident.NewPollID()
	if err != nil {
		t.Fatalf("Failed to generate poll ID: %v", err)
	}
	poll := models.NewPoll(pollID, question, options, multipleChoice)
	if err := st.Create(context.Background(), poll); err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return pollID
}

// NewVoterID returns a unique opaque voter identifier, the way a client
// would generate and persist one locally.
func NewVoterID() string {
	return "voter-" + uuid.NewString()
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
