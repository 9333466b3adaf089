// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Travel Tracker server.

Travel Tracker keeps a world map of visited countries for each member of a
family. Members switch between tabs, type a country name to mark it as
visited and add new members with their own accent color.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... SESSION_SECRET=... go run .

Or against a local SQLite file with seed data:

	go run . -t sqlite -d tracker.db -seed -session-secret dev

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or SQLite path
  - SESSION_SECRET (-session-secret): cookie signing secret (cookie mode only)

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - SESSION_MODE (-session): cookie or shared (default: cookie)
  - REDIS_URL (-redis): keep cookie sessions in Redis instead of memory
  - SEED_DATA (-seed): load the country table and starter members

# Architecture

  - handlers: HTTP request handlers (tracker pages, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: request logging, Prometheus metrics, response helpers
  - store: queries over users, countries and visits
  - session: which member each client is looking at
  - views: embedded templates and static assets
  - models: page and row types
  - auth: session cookie signing
  - db: connection, schema and seed data
  - logging: slog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
