// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Pollify API server.

Pollify lets anyone create a poll with 2-5 options, share its link, and
watch live-updating tallies. Voters are identified by an opaque
client-generated token used only for duplicate-vote detection.

# Starting the Server

The in-memory store needs no configuration:

	go run main.go

Durable deployments pick a backend:

	go run main.go -s postgres -d "postgres://..."
	go run main.go -s sqlite -d pollify.db
	go run main.go -s redis -r localhost:6379

A .env file is loaded at startup if present.

# Configuration

  - PORT (-p): Server port (default: 3001)
  - STORE_TYPE (-s): memory, sqlite, postgres, or redis (default: memory)
  - DATABASE_URL (-d): connection string for sqlite/postgres stores
  - REDIS_ADDR (-r), REDIS_PASSWORD, REDIS_DB: redis store settings

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: PollStore interface with memory, SQL, and Redis backends
  - vote: ballot validation (Ledger) and results projection (Aggregator)
  - handlers: HTTP request handlers (polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - ident: Poll ID generation
  - cliparse: Configuration parsing

All vote-dedup logic lives behind store.ApplyVote, which every backend
implements as a single atomic operation per poll.

See package documentation for each component.
*/
package main
