// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/danielhkuo/travel-tracker/cliparse"
	"github.com/danielhkuo/travel-tracker/handlers"
	"github.com/danielhkuo/travel-tracker/middleware"
	"github.com/danielhkuo/travel-tracker/session"
	"github.com/danielhkuo/travel-tracker/store"
	"github.com/danielhkuo/travel-tracker/views"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, sessions session.Manager) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}
	metrics := middleware.NewMetrics()
	repo := store.New(db, cfg.DatabaseType)

	// Initialize handlers
	trackerHandler := handlers.NewTrackerHandler(repo, sessions, renderer, metrics)
	healthHandler := handlers.NewHealthHandler(repo)

	route := func(pattern, name string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(metrics.Instrument(name, h)))
	}

	// Operational endpoints
	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /static/", views.Static())

	// Tracker
	route("GET /{$}", "/", trackerHandler.Index)
	route("POST /add", "/add", trackerHandler.AddCountry)
	route("POST /user", "/user", trackerHandler.SwitchUser)
	route("POST /new", "/new", trackerHandler.CreateUser)

	return mux, nil
}
