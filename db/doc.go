// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the relational store and prepares its schema.

# Connecting

Open picks the driver from cfg.DatabaseType and pings the store:

	conn, err := db.Open(cfg)
	if err != nil {
		// fatal at startup
	}

Postgres uses lib/pq; the DATABASE_SSL toggle maps to sslmode=require or
sslmode=disable unless the URL already names an sslmode. SQLite uses the
pure Go modernc.org/sqlite driver with a single open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: id, name, color
  - countries: country_code (unique), country_name
  - visited_countries: country_code, user_id

# Relationships

	users 1──* visited_countries
	countries 1──* visited_countries (by country_code, not enforced)

Nothing is ever deleted, so no cascade rules are defined.

# Seeding

Seed loads the country list and, on an empty users table, the two starter
users. It is idempotent.

# Placeholders

Queries are written with ? placeholders and passed through Rebind, which
rewrites them to $N for Postgres.
*/
package db
