// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/travel-tracker/middleware"
	"github.com/danielhkuo/travel-tracker/models"
	"github.com/danielhkuo/travel-tracker/store"
)

type HealthHandler struct {
	store store.Repository
}

func NewHealthHandler(repo store.Repository) *HealthHandler {
	return &HealthHandler{store: repo}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, models.HealthResponse{
			Status: "unavailable",
			Error:  "database unreachable",
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
