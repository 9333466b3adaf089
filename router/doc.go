// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the travel tracker.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux, err := router.NewRouter(db, cfg, sessions)

# Endpoints

Pages and forms:

	GET  /      - Map for the current user
	POST /add   - Mark a country visited
	POST /user  - Switch user, or show the new-user form (add=new)
	POST /new   - Create a user and switch to it

Operations:

	GET /health    - Store liveness (JSON)
	GET /metrics   - Prometheus metrics
	GET /static/*  - Embedded stylesheets

Tracker routes are wrapped with request logging and metrics.
*/
package router
