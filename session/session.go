// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/travel-tracker/auth"
)

// CookieName is the session cookie set in cookie mode
const CookieName = "tracker_session"

// DefaultTTL bounds how long a cookie session is remembered
const DefaultTTL = 30 * 24 * time.Hour

// Manager holds the "current user" pointer for incoming requests.
type Manager interface {
	CurrentUserID(r *http.Request) (int64, error)
	SetCurrentUserID(w http.ResponseWriter, r *http.Request, userID int64) error
}

// Backend stores cookie sessions by id.
type Backend interface {
	Get(ctx context.Context, sessionID string) (userID int64, ok bool, err error)
	Put(ctx context.Context, sessionID string, userID int64) error
}

// Shared is one current user for the whole process. Every client sees and
// moves the same pointer; concurrent switches are last-write-wins.
type Shared struct {
	current atomic.Int64
}

func NewShared(defaultUserID int64) *Shared {
	s := &Shared{}
	s.current.Store(defaultUserID)
	return s
}

func (s *Shared) CurrentUserID(_ *http.Request) (int64, error) {
	return s.current.Load(), nil
}

func (s *Shared) SetCurrentUserID(_ http.ResponseWriter, _ *http.Request, userID int64) error {
	s.current.Store(userID)
	return nil
}

// CookieManager keeps a current user per browser, keyed by a signed cookie.
type CookieManager struct {
	backend       Backend
	secret        string
	defaultUserID int64
	ttl           time.Duration
	secure        bool
}

type CookieOption func(*CookieManager)

// WithTTL overrides DefaultTTL
func WithTTL(ttl time.Duration) CookieOption {
	return func(m *CookieManager) { m.ttl = ttl }
}

// WithSecureCookie marks the cookie Secure (HTTPS only)
func WithSecureCookie(secure bool) CookieOption {
	return func(m *CookieManager) { m.secure = secure }
}

func NewCookieManager(backend Backend, secret string, defaultUserID int64, opts ...CookieOption) *CookieManager {
	m := &CookieManager{
		backend:       backend,
		secret:        secret,
		defaultUserID: defaultUserID,
		ttl:           DefaultTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CurrentUserID returns the session's user, or the default user when the
// request has no valid session.
func (m *CookieManager) CurrentUserID(r *http.Request) (int64, error) {
	sessionID, ok := m.sessionID(r)
	if !ok {
		return m.defaultUserID, nil
	}

	userID, found, err := m.backend.Get(r.Context(), sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		return m.defaultUserID, nil
	}
	return userID, nil
}

// SetCurrentUserID points the request's session at userID, starting a new
// session (and cookie) when the request has none.
func (m *CookieManager) SetCurrentUserID(w http.ResponseWriter, r *http.Request, userID int64) error {
	sessionID, ok := m.sessionID(r)
	if !ok {
		sessionID = auth.NewSessionID()
		slog.Debug("session started", "session_id", sessionID)
	}

	if err := m.backend.Put(r.Context(), sessionID, userID); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    auth.EncodeCookie(sessionID, m.secret),
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *CookieManager) sessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}

	id, err := auth.DecodeCookie(c.Value, m.secret)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidSession) {
			slog.Warn("ignoring invalid session cookie", "remote", r.RemoteAddr)
		}
		return "", false
	}
	return id, true
}
