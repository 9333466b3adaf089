// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /{$}", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms).

# Metrics

Metrics owns a Prometheus registry with request counters, latency
histograms and domain counters (visits recorded, users created, user
switches, country lookup misses):

	metrics := middleware.NewMetrics()
	mux.HandleFunc("POST /add", metrics.Instrument("/add", handler))
	mux.Handle("GET /metrics", metrics.Handler())

# Responses

Pages are HTML; failures are plain text with no internals:

	middleware.TextResponse(w, http.StatusNotFound, "Country not found")
	middleware.InternalError(w) // 500 "Internal Server Error"

JSONResponse is used by the health endpoint.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
