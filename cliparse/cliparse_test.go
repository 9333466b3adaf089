// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("DATABASE_SSL", "true")
	t.Setenv("DEFAULT_USER_ID", "2")
	t.Setenv("SECURE_COOKIE", "1")
	t.Setenv("DATABASE_TYPE", "")
	t.Setenv("SESSION_MODE", "")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if !cfg.DatabaseSSL {
		t.Error("expected DATABASE_SSL to enable ssl")
	}
	if !cfg.SecureCookie {
		t.Error("expected SECURE_COOKIE to mark the cookie secure")
	}
	if cfg.DefaultUserID != 2 {
		t.Errorf("expected default user 2, got %d", cfg.DefaultUserID)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres by default, got %s", cfg.DatabaseType)
	}
	if cfg.SessionMode != SessionCookie {
		t.Errorf("expected cookie sessions by default, got %s", cfg.SessionMode)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_SSL", "true")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_MODE", "")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-t", "sqlite", "-ssl=false", "-session-secret", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseSSL {
		t.Error("CLI -ssl=false should override DATABASE_SSL")
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_Validation(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("SESSION_MODE", "")
	t.Setenv("DATABASE_TYPE", "")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"missing database url", []string{}, true},
		{"cookie mode without secret", []string{"-d", "postgres://x"}, true},
		{"shared mode needs no secret", []string{"-d", "postgres://x", "-session", "shared"}, false},
		{"unknown session mode", []string{"-d", "postgres://x", "-session", "jwt"}, true},
		{"unknown database type", []string{"-d", "x", "-t", "mysql", "-session", "shared"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("TRACKER_TEST_VALUE=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRACKER_TEST_VALUE", "")
	os.Unsetenv("TRACKER_TEST_VALUE")

	if err := LoadEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if got := os.Getenv("TRACKER_TEST_VALUE"); got != "from-file" {
		t.Errorf("expected value from .env, got %q", got)
	}
}
