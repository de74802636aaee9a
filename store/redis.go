// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/pollify/pollify/models"
)

// Redis key layout
const (
	pollKeyPrefix   = "poll:"
	votersKeySuffix = ":voters"
	voteFieldPrefix = "votes:"
)

// applyVoteScript runs the duplicate check and the counter increments as
// one server-side operation. KEYS[1] is the poll hash, KEYS[2] the voter
// set; ARGV[1] is the voter ID, the rest are option indices.
const applyVoteScript = `
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return 'notfound'
	end
	if redis.call('SADD', KEYS[2], ARGV[1]) == 0 then
		return 'duplicate'
	end
	for i = 2, #ARGV do
		redis.call('HINCRBY', KEYS[1], 'votes:' .. ARGV[i], 1)
	end
	return 'ok'
`

// RedisStore keeps each poll in a hash plus a voter set. Vote submission
// is a preloaded Lua script, so the check-then-act race cannot occur.
type RedisStore struct {
	client    *redis.Client
	scriptSHA string
}

// OpenRedis connects, verifies the connection, and preloads the vote
// script.
func OpenRedis(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	sha, err := client.ScriptLoad(ctx, applyVoteScript).Result()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to load vote script: %w", err)
	}

	return &RedisStore{client: client, scriptSHA: sha}, nil
}

func pollKey(id string) string   { return pollKeyPrefix + id }
func votersKey(id string) string { return pollKeyPrefix + id + votersKeySuffix }

func (s *RedisStore) Create(ctx context.Context, poll *models.Poll) error {
	key := pollKey(poll.ID)

	optionsJSON, err := json.Marshal(poll.Options)
	if err != nil {
		return fmt.Errorf("failed to serialize options: %w", err)
	}

	// HSETNX on the question field is the create-if-absent guard; the
	// remaining fields are filled in only after the guard wins.
	ok, err := s.client.HSetNX(ctx, key, "question", poll.Question).Result()
	if err != nil {
		return fmt.Errorf("failed to create poll: %w", err)
	}
	if !ok {
		return ErrExists
	}

	fields := map[string]interface{}{
		"options":        string(optionsJSON),
		"multipleChoice": strconv.FormatBool(poll.MultipleChoice),
		"createdAt":      poll.CreatedAt.Format(time.RFC3339Nano),
	}
	for idx := range poll.Options {
		fields[voteFieldPrefix+strconv.Itoa(idx)] = 0
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("failed to store poll: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Poll, error) {
	data, err := s.client.HGetAll(ctx, pollKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}

	poll := &models.Poll{ID: id, Question: data["question"]}

	if err := json.Unmarshal([]byte(data["options"]), &poll.Options); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}
	poll.MultipleChoice = data["multipleChoice"] == "true"
	if data["createdAt"] != "" {
		createdAt, err := time.Parse(time.RFC3339Nano, data["createdAt"])
		if err != nil {
			return nil, fmt.Errorf("failed to parse creation time: %w", err)
		}
		poll.CreatedAt = createdAt
	}

	poll.Votes = make(map[int]int, len(poll.Options))
	for idx := range poll.Options {
		count := 0
		if raw := data[voteFieldPrefix+strconv.Itoa(idx)]; raw != "" {
			count, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("failed to parse vote counter: %w", err)
			}
		}
		poll.Votes[idx] = count
	}
	return poll, nil
}

func (s *RedisStore) ApplyVote(ctx context.Context, id string, optionIndices []int, voterID string) error {
	keys := []string{pollKey(id), votersKey(id)}
	args := make([]interface{}, 0, len(optionIndices)+1)
	args = append(args, voterID)
	for _, idx := range optionIndices {
		args = append(args, idx)
	}

	result, err := s.client.EvalSha(ctx, s.scriptSHA, keys, args...).Result()
	if err != nil && isNoScript(err) {
		// Script cache was flushed; reload and retry once.
		sha, loadErr := s.client.ScriptLoad(ctx, applyVoteScript).Result()
		if loadErr != nil {
			return fmt.Errorf("failed to reload vote script: %w", loadErr)
		}
		s.scriptSHA = sha
		result, err = s.client.EvalSha(ctx, s.scriptSHA, keys, args...).Result()
	}
	if err != nil {
		return fmt.Errorf("failed to run vote script: %w", err)
	}

	switch result {
	case "ok":
		return nil
	case "notfound":
		return ErrNotFound
	case "duplicate":
		return ErrAlreadyVoted
	default:
		return fmt.Errorf("unexpected vote script result %v", result)
	}
}

func (s *RedisStore) HasVoted(ctx context.Context, id string, voterID string) (bool, error) {
	exists, err := s.client.Exists(ctx, pollKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to query poll: %w", err)
	}
	if exists == 0 {
		return false, ErrNotFound
	}

	has, err := s.client.SIsMember(ctx, votersKey(id), voterID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to query voter set: %w", err)
	}
	return has, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func isNoScript(err error) bool {
	return err != nil && len(err.Error()) >= 8 && err.Error()[:8] == "NOSCRIPT"
}
