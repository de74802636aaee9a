// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"fmt"
)

// PollIDLength is the length of every generated poll identifier.
const PollIDLength = 8

// alphabet is the 36-symbol set poll IDs are drawn from. Eight symbols
// give roughly 41 bits of entropy.
const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewPollID returns a random 8-character poll identifier. The generator
// makes no uniqueness guarantee; the store's Create rejects collisions
// and the caller retries with a fresh ID.
func NewPollID() (string, error) {
	id := make([]byte, 0, PollIDLength)
	buf := make([]byte, 16)
	for len(id) < PollIDLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate poll ID: %w", err)
		}
		for _, b := range buf {
			// 252 = 36 * 7; accepting higher bytes would bias the draw
			if b >= 252 {
				continue
			}
			id = append(id, alphabet[int(b)%len(alphabet)])
			if len(id) == PollIDLength {
				break
			}
		}
	}
	return string(id), nil
}
