// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/travel-tracker/cliparse"
	"github.com/danielhkuo/travel-tracker/models"
	"github.com/danielhkuo/travel-tracker/store"
	"github.com/danielhkuo/travel-tracker/testutil"
)

func TestHealthCheck(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHealthHandler(store.New(db, cliparse.DatabaseSQLite))

	t.Run("healthy", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Check(w, httptest.NewRequest("GET", "/health", nil))

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "ok" {
			t.Errorf("Expected status ok, got %q", resp.Status)
		}
	})

	t.Run("database closed", func(t *testing.T) {
		db.Close()

		w := httptest.NewRecorder()
		h.Check(w, httptest.NewRequest("GET", "/health", nil))

		testutil.AssertStatus(t, w, http.StatusServiceUnavailable)

		var resp models.HealthResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Status != "unavailable" || resp.Error == "" {
			t.Errorf("Unexpected response %+v", resp)
		}
	})
}
