// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadEnv should run first so values from a .env file are visible:

	_ = cliparse.LoadEnv()

# CLI Flags

	-p               Server port
	-d               Database URL or SQLite path
	-t               Database type (postgres, sqlite)
	-ssl             Require TLS to postgres
	-session         Session mode (cookie, shared)
	-session-secret  Cookie signing secret
	-redis           Redis URL for cookie sessions
	-secure-cookie   Mark the session cookie Secure
	-default-user    User shown before any switch
	-seed            Load countries and starter users

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	DATABASE_SSL    → -ssl
	SESSION_MODE    → -session
	SESSION_SECRET  → -session-secret
	REDIS_URL       → -redis
	SECURE_COOKIE   → -secure-cookie
	DEFAULT_USER_ID → -default-user
	SEED_DATA       → -seed

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - no database URL is provided
  - the database type or session mode is unknown
  - cookie sessions are selected without a secret
*/
package cliparse
