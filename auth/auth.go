// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid session cookie")
)

// NewSessionID creates a random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// Sign creates an HMAC-SHA256 signature for a session id
// URL-safe base64 without padding so it fits in a cookie value
func Sign(sessionID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(sessionID))
	return strings.TrimRight(base64.URLEncoding.EncodeToString(h.Sum(nil)), "=")
}

// EncodeCookie returns the cookie value "<session id>.<signature>"
func EncodeCookie(sessionID, secret string) string {
	return sessionID + "." + Sign(sessionID, secret)
}

// DecodeCookie verifies a cookie value and returns the session id it carries
func DecodeCookie(value, secret string) (string, error) {
	i := strings.LastIndexByte(value, '.')
	if i <= 0 || i == len(value)-1 {
		return "", ErrInvalidSession
	}

	sessionID, sig := value[:i], value[i+1:]
	if _, err := uuid.Parse(sessionID); err != nil {
		return "", ErrInvalidSession
	}

	expected := Sign(sessionID, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSession
	}
	return sessionID, nil
}
