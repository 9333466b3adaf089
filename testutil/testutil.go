// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/travel-tracker/cliparse"
	"github.com/danielhkuo/travel-tracker/db"
	"github.com/danielhkuo/travel-tracker/models"
	"github.com/danielhkuo/travel-tracker/session"
)

// TestSessionSecret signs session cookies in tests
const TestSessionSecret = "test-session-secret"

// SetupTestDB creates a fresh on-disk SQLite database with the full schema
// and seed data (all countries, Mani as user 1 and Sai as user 2).
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}
	if err := db.Seed(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		t.Fatalf("Failed to seed database: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration backed by a temp SQLite file
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:          3000,
		DatabaseURL:   filepath.Join(t.TempDir(), "tracker-test.db"),
		DatabaseType:  cliparse.DatabaseSQLite,
		SessionMode:   cliparse.SessionCookie,
		SessionSecret: TestSessionSecret,
		DefaultUserID: 1,
	}
}

// CreateTestUser inserts a user and returns its id
func CreateTestUser(t *testing.T, conn *sql.DB, name, color string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`INSERT INTO users (name, color) VALUES (?, ?) RETURNING id`, name, color).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return id
}

// AddTestVisit records a visited country for a user
func AddTestVisit(t *testing.T, conn *sql.DB, userID int64, countryCode string) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO visited_countries (country_code, user_id) VALUES (?, ?)`, countryCode, userID)
	if err != nil {
		t.Fatalf("Failed to add test visit: %v", err)
	}
}

// CountVisits returns the number of visited_countries rows, optionally for one user
func CountVisits(t *testing.T, conn *sql.DB, userID int64) int {
	t.Helper()

	var n int
	var err error
	if userID == 0 {
		err = conn.QueryRow(`SELECT COUNT(*) FROM visited_countries`).Scan(&n)
	} else {
		err = conn.QueryRow(`SELECT COUNT(*) FROM visited_countries WHERE user_id = ?`, userID).Scan(&n)
	}
	if err != nil {
		t.Fatalf("Failed to count visits: %v", err)
	}
	return n
}

// VisitedCodes returns a user's visited codes in insertion order
func VisitedCodes(t *testing.T, conn *sql.DB, userID int64) []string {
	t.Helper()

	rows, err := conn.Query(`SELECT country_code FROM visited_countries WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		t.Fatalf("Failed to query visits: %v", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			t.Fatalf("Failed to scan visit: %v", err)
		}
		codes = append(codes, c)
	}
	return codes
}

// LookupUser fetches a user row by id
func LookupUser(t *testing.T, conn *sql.DB, id int64) (models.User, bool) {
	t.Helper()

	var u models.User
	err := conn.QueryRow(`SELECT id, name, color FROM users WHERE id = ?`, id).Scan(&u.ID, &u.Name, &u.Color)
	if err == sql.ErrNoRows {
		return models.User{}, false
	}
	if err != nil {
		t.Fatalf("Failed to look up user: %v", err)
	}
	return u, true
}

// FormRequest creates a form-encoded HTTP test request
func FormRequest(method, path string, form url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a 302 to the given location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Errorf("Expected status 302, got %d. Body: %s", w.Code, w.Body.String())
		return
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %s, got %s", location, got)
	}
}

// SessionCookie returns the session cookie set on a response, if any
func SessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

// NewCookieSessions returns an in-memory cookie session manager defaulting to user 1
func NewCookieSessions() *session.CookieManager {
	return session.NewCookieManager(session.NewMemoryBackend(session.DefaultTTL), TestSessionSecret, 1)
}
