// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestNewSessionID(t *testing.T) {
	id1 := NewSessionID()
	id2 := NewSessionID()

	if len(id1) != 36 {
		t.Errorf("NewSessionID() length = %d, want 36", len(id1))
	}
	if id1 == id2 {
		t.Error("NewSessionID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		secret    string
	}{
		{"standard", "0b6f1f2e-4c9a-4f4e-9d55-0d1b0a9f7c11", "secret"},
		{"empty id", "", "secret"},
		{"empty secret", "0b6f1f2e-4c9a-4f4e-9d55-0d1b0a9f7c11", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := Sign(tt.sessionID, tt.secret)

			if sig == "" {
				t.Error("Sign() returned empty string")
			}

			// Should be deterministic
			if sig != Sign(tt.sessionID, tt.secret) {
				t.Error("Sign() is not deterministic")
			}

			// Should be URL-safe (no padding)
			if strings.Contains(sig, "=") {
				t.Error("Sign() contains padding characters")
			}

			if tt.secret != "" && sig == Sign(tt.sessionID, tt.secret+"x") {
				t.Error("Sign() produced same signature for different secrets")
			}
		})
	}
}

func TestDecodeCookie(t *testing.T) {
	secret := "test-secret"
	id := NewSessionID()
	valid := EncodeCookie(id, secret)

	tests := []struct {
		name    string
		value   string
		secret  string
		wantErr bool
	}{
		{"valid cookie", valid, secret, false},
		{"wrong secret", valid, "other-secret", true},
		{"tampered id", NewSessionID() + valid[strings.LastIndexByte(valid, '.'):], secret, true},
		{"missing signature", id, secret, true},
		{"trailing dot", id + ".", secret, true},
		{"not a uuid", EncodeCookie("user-1", secret), secret, true},
		{"empty", "", secret, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCookie(tt.value, tt.secret)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeCookie() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidSession {
				t.Errorf("DecodeCookie() error = %v, want %v", err, ErrInvalidSession)
			}
			if !tt.wantErr && got != id {
				t.Errorf("DecodeCookie() = %q, want %q", got, id)
			}
		})
	}
}
