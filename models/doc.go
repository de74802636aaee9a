// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: question, options, multipleChoice
  - SubmitVoteRequest: optionIndices, voterId
  - CheckVoteRequest: voterId

# Response Types

Types for JSON responses:

  - CreatePollResponse: pollId, message
  - SubmitVoteResponse: message
  - CheckVoteResponse: hasVoted
  - ErrorResponse: error, message

# Domain Types

  - Poll: question, ordered options, per-option vote counters
  - Summary: read-only results projection with totals and percentages

Vote counters are keyed by option index. encoding/json renders int-keyed
maps with string keys, so Votes marshals as {"0": 3, "1": 1}, the shape
clients expect.

# Limits

	MinOptions        = 2
	MaxOptions        = 5
	MaxQuestionLength = 200
*/
package models
