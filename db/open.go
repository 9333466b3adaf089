// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/danielhkuo/travel-tracker/cliparse"
)

// Open connects to the configured store and verifies the connection.
// A failed ping is returned as an error; callers treat it as fatal.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	var (
		driver string
		dsn    string
	)

	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres:
		driver = "postgres"
		dsn = postgresDSN(cfg.DatabaseURL, cfg.DatabaseSSL)
	case cliparse.DatabaseSQLite:
		driver = "sqlite"
		dsn = cfg.DatabaseURL
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// One writer at a time; avoids SQLITE_BUSY under concurrent requests
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}

// postgresDSN applies the ssl toggle unless the URL already pins an sslmode.
func postgresDSN(raw string, ssl bool) string {
	mode := "disable"
	if ssl {
		mode = "require"
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		// key=value form
		if strings.Contains(raw, "sslmode=") {
			return raw
		}
		return strings.TrimSpace(raw + " sslmode=" + mode)
	}

	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", mode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}
