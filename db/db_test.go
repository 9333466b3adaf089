// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/travel-tracker/cliparse"
)

func sqliteConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "tracker.db"),
	}
}

func TestCreateSchemaAndSeedAreIdempotent(t *testing.T) {
	cfg := sqliteConfig(t)
	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, cfg.DatabaseType); err != nil {
			t.Fatalf("CreateSchema() run %d error = %v", i+1, err)
		}
		if err := Seed(conn, cfg.DatabaseType); err != nil {
			t.Fatalf("Seed() run %d error = %v", i+1, err)
		}
	}

	var countries, users int
	if err := conn.QueryRow("SELECT COUNT(*) FROM countries").Scan(&countries); err != nil {
		t.Fatal(err)
	}
	if err := conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&users); err != nil {
		t.Fatal(err)
	}

	if countries != len(Countries) {
		t.Errorf("Expected %d countries, got %d", len(Countries), countries)
	}
	if users != len(StarterUsers) {
		t.Errorf("Expected %d starter users, got %d", len(StarterUsers), users)
	}

	var name, color string
	if err := conn.QueryRow("SELECT name, color FROM users WHERE id = 1").Scan(&name, &color); err != nil {
		t.Fatal(err)
	}
	if name != "Mani" || color != "teal" {
		t.Errorf("Expected user 1 to be Mani/teal, got %s/%s", name, color)
	}
}

func TestCreateSchemaUnknownType(t *testing.T) {
	if err := CreateSchema(nil, "mysql"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestCountryCodesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Countries {
		if len(c.Code) != 2 {
			t.Errorf("country %s has non alpha-2 code %q", c.Name, c.Code)
		}
		if seen[c.Code] {
			t.Errorf("duplicate country code %s", c.Code)
		}
		seen[c.Code] = true
	}
}

func TestRebind(t *testing.T) {
	tests := []struct {
		name   string
		dbType string
		query  string
		want   string
	}{
		{"postgres", cliparse.DatabasePostgres, "SELECT * FROM users WHERE id = ? AND name = ?", "SELECT * FROM users WHERE id = $1 AND name = $2"},
		{"sqlite untouched", cliparse.DatabaseSQLite, "SELECT * FROM users WHERE id = ?", "SELECT * FROM users WHERE id = ?"},
		{"no placeholders", cliparse.DatabasePostgres, "SELECT 1", "SELECT 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rebind(tt.dbType, tt.query); got != tt.want {
				t.Errorf("Rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ssl  bool
		want string
	}{
		{"url ssl off", "postgres://u:p@localhost:5432/world", false, "sslmode=disable"},
		{"url ssl on", "postgres://u:p@localhost:5432/world", true, "sslmode=require"},
		{"url keeps explicit mode", "postgres://u:p@localhost/world?sslmode=verify-full", false, "sslmode=verify-full"},
		{"keyword form", "host=localhost dbname=world", true, "sslmode=require"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := postgresDSN(tt.raw, tt.ssl)
			if !strings.Contains(got, tt.want) {
				t.Errorf("postgresDSN() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestUserColumnsUnbounded(t *testing.T) {
	// Both dialects must accept the same names and colors
	for name, ddl := range map[string]string{"postgres": postgresSchema, "sqlite": sqliteSchema} {
		t.Run(name, func(t *testing.T) {
			users := ddl[strings.Index(ddl, "CREATE TABLE IF NOT EXISTS users"):]
			users = users[:strings.Index(users, ");")]
			for _, col := range []string{"name TEXT NOT NULL", "color TEXT NOT NULL"} {
				if !strings.Contains(users, col) {
					t.Errorf("Expected users column %q in %s schema", col, name)
				}
			}
		})
	}

	cfg := sqliteConfig(t)
	conn, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer conn.Close()
	if err := CreateSchema(conn, cfg.DatabaseType); err != nil {
		t.Fatal(err)
	}

	long := strings.Repeat("n", 40)
	if _, err := conn.Exec(`INSERT INTO users (name, color) VALUES (?, ?)`, long, "mediumaquamarine"); err != nil {
		t.Errorf("Expected long name and color to be stored: %v", err)
	}
}
