// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"math"
	"time"
)

// Poll shape limits enforced at creation
const (
	MinOptions        = 2
	MaxOptions        = 5
	MaxQuestionLength = 200
)

// Request types

type CreatePollRequest struct {
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	MultipleChoice bool     `json:"multipleChoice"`
}

type SubmitVoteRequest struct {
	OptionIndices []int  `json:"optionIndices"`
	VoterID       string `json:"voterId"`
}

type CheckVoteRequest struct {
	VoterID string `json:"voterId"`
}

// Response types

type CreatePollResponse struct {
	PollID  string `json:"pollId"`
	Message string `json:"message"`
}

type SubmitVoteResponse struct {
	Message string `json:"message"`
}

type CheckVoteResponse struct {
	HasVoted bool `json:"hasVoted"`
}

// Domain types

// Poll is the sole entity. Options are ordered; the position of a label is
// the option index used by votes and results. Votes holds one counter per
// option index for the life of the poll. The set of voter IDs that have
// voted is tracked inside each store and is never part of this struct, so
// it cannot leak into a response.
type Poll struct {
	ID             string      `json:"pollId"`
	Question       string      `json:"question"`
	Options        []string    `json:"options"`
	MultipleChoice bool        `json:"multipleChoice"`
	Votes          map[int]int `json:"votes"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// NewPoll builds a poll with every counter initialized to zero.
func NewPoll(id, question string, options []string, multipleChoice bool) *Poll {
	votes := make(map[int]int, len(options))
	for i := range options {
		votes[i] = 0
	}
	return &Poll{
		ID:             id,
		Question:       question,
		Options:        options,
		MultipleChoice: multipleChoice,
		Votes:          votes,
		CreatedAt:      time.Now(),
	}
}

// Summary is the read-only results projection of a poll.
type Summary struct {
	Question       string      `json:"question"`
	Options        []string    `json:"options"`
	Votes          map[int]int `json:"votes"`
	TotalVotes     int         `json:"totalVotes"`
	MultipleChoice bool        `json:"multipleChoice"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// Percentages returns each option's rounded share of the total, or zero
// for every option when no votes have been cast. Shares are rounded
// independently and may not sum to exactly 100.
func (s *Summary) Percentages() map[int]int {
	pct := make(map[int]int, len(s.Votes))
	for i, count := range s.Votes {
		if s.TotalVotes == 0 {
			pct[i] = 0
			continue
		}
		pct[i] = int(math.Round(100 * float64(count) / float64(s.TotalVotes)))
	}
	return pct
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
