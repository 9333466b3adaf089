// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store implements the data-access functions over the relational store.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/travel-tracker/cliparse"
	"github.com/danielhkuo/travel-tracker/db"
	"github.com/danielhkuo/travel-tracker/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCountryNotFound = errors.New("country not found")
)

// StoreError reports a failed store round-trip. Op names the data-access
// function that failed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Repository is the set of data-access functions the handlers use.
type Repository interface {
	ListVisitedCodes(ctx context.Context, userID int64) ([]string, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	FindCountries(ctx context.Context, fragment string) ([]models.Country, error)
	ResolveCountry(ctx context.Context, fragment string) (models.Country, error)
	AddVisited(ctx context.Context, countryCode string, userID int64) error
	CreateUser(ctx context.Context, name, color string) (models.User, error)
	CountVisited(ctx context.Context, userID int64) (int, error)
	Ping(ctx context.Context) error
}

// Ensure SQLStore implements Repository
var _ Repository = (*SQLStore)(nil)

// SQLStore implements Repository on database/sql for Postgres and SQLite.
type SQLStore struct {
	db     *sql.DB
	dbType string
}

func New(conn *sql.DB, dbType string) *SQLStore {
	return &SQLStore{db: conn, dbType: dbType}
}

func (s *SQLStore) q(query string) string {
	return db.Rebind(s.dbType, query)
}

// lower folds a search term the same way the backend's LOWER() does
func (s *SQLStore) lower(v string) string {
	if s.dbType != cliparse.DatabaseSQLite {
		return strings.ToLower(v)
	}
	b := []byte(v)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Ping checks the store is reachable.
func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &StoreError{Op: "ping", Err: err}
	}
	return nil
}

// ListVisitedCodes returns the country codes a user has marked visited,
// ordered by code. Duplicates are kept.
func (s *SQLStore) ListVisitedCodes(ctx context.Context, userID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT country_code
		FROM visited_countries
		JOIN users ON users.id = user_id
		WHERE user_id = ?
		ORDER BY country_code, visited_countries.id
	`), userID)
	if err != nil {
		return nil, &StoreError{Op: "list visited", Err: err}
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, &StoreError{Op: "list visited", Err: err}
		}
		codes = append(codes, strings.TrimSpace(code))
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list visited", Err: err}
	}

	return codes, nil
}

// ListUsers returns every user ordered by id.
func (s *SQLStore) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, color FROM users ORDER BY id`)
	if err != nil {
		return nil, &StoreError{Op: "list users", Err: err}
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Color); err != nil {
			return nil, &StoreError{Op: "list users", Err: err}
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list users", Err: err}
	}

	return users, nil
}

// GetUser resolves a user id with a point lookup.
func (s *SQLStore) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT id, name, color FROM users WHERE id = ?
	`), userID).Scan(&u.ID, &u.Name, &u.Color)

	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, &StoreError{Op: "get user", Err: err}
	}

	return u, nil
}

// FindCountries matches fragment as a case-insensitive substring of the
// country name. Exact name matches sort first, then ascending code.
//
// SQLite's LOWER() only folds ASCII, so on SQLite case-insensitivity covers
// ASCII letters only: "Åland" matches "Åland Islands" but "åland" does not.
// Postgres folds all letters.
func (s *SQLStore) FindCountries(ctx context.Context, fragment string) ([]models.Country, error) {
	needle := s.lower(fragment)

	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT country_code, country_name
		FROM countries
		WHERE LOWER(country_name) LIKE '%' || ? || '%'
		ORDER BY CASE WHEN LOWER(country_name) = ? THEN 0 ELSE 1 END, country_code
	`), needle, needle)
	if err != nil {
		return nil, &StoreError{Op: "find countries", Err: err}
	}
	defer rows.Close()

	countries := []models.Country{}
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return nil, &StoreError{Op: "find countries", Err: err}
		}
		c.Code = strings.TrimSpace(c.Code)
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "find countries", Err: err}
	}

	return countries, nil
}

// ResolveCountry returns the best match for fragment, or ErrCountryNotFound.
// An empty fragment never matches.
func (s *SQLStore) ResolveCountry(ctx context.Context, fragment string) (models.Country, error) {
	if fragment == "" {
		return models.Country{}, ErrCountryNotFound
	}

	matches, err := s.FindCountries(ctx, fragment)
	if err != nil {
		return models.Country{}, err
	}
	if len(matches) == 0 {
		return models.Country{}, ErrCountryNotFound
	}

	return matches[0], nil
}

// AddVisited records a visit. Repeat visits are allowed.
func (s *SQLStore) AddVisited(ctx context.Context, countryCode string, userID int64) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO visited_countries (country_code, user_id) VALUES (?, ?)
	`), countryCode, userID)
	if err != nil {
		return &StoreError{Op: "add visited", Err: err}
	}
	return nil
}

// CreateUser inserts a user and returns it with the generated id.
func (s *SQLStore) CreateUser(ctx context.Context, name, color string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, s.q(`
		INSERT INTO users (name, color) VALUES (?, ?)
		RETURNING id, name, color
	`), name, color).Scan(&u.ID, &u.Name, &u.Color)
	if err != nil {
		return models.User{}, &StoreError{Op: "create user", Err: err}
	}
	return u, nil
}

// CountVisited returns the number of visit rows for a user.
func (s *SQLStore) CountVisited(ctx context.Context, userID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT COUNT(*) FROM visited_countries WHERE user_id = ?
	`), userID).Scan(&n)
	if err != nil {
		return 0, &StoreError{Op: "count visited", Err: err}
	}
	return n, nil
}
