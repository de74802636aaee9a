// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3001)
  - StoreType: memory, sqlite, postgres, or redis (default: memory)
  - DatabaseURL: SQLite path or PostgreSQL DSN (required for sql stores)
  - RedisAddr: Redis host:port (default: localhost:6379)
  - RedisPassword, RedisDB: Redis credentials (env only)

# CLI Flags

	-p  Server port
	-s  Store type
	-d  Database URL
	-r  Redis address

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	STORE_TYPE     → -s
	DATABASE_URL   → -d
	REDIS_ADDR     → -r
	REDIS_PASSWORD
	REDIS_DB

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if the store type is unknown, or if a sqlite
or postgres store is selected without DATABASE_URL.
*/
package cliparse
