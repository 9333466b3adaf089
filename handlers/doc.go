// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the travel tracker.

# Handler Types

  - TrackerHandler: map view, country adds, user switching and creation
  - HealthHandler: store liveness for load balancers

Handlers are created via constructor functions that accept their
dependencies:

	tracker := handlers.NewTrackerHandler(repo, sessions, renderer, metrics)

# Endpoints

	GET  /      → Index       (render map for the current user)
	POST /add   → AddCountry  (form: country)
	POST /user  → SwitchUser  (form: user, or add=new)
	POST /new   → CreateUser  (form: name, color)

Successful writes redirect to / with 302. A country lookup miss is a 404
with the plain-text body "Country not found". Store failures are logged and
answered with a plain-text 500 "Internal Server Error".

# Current User

The current user comes from the session.Manager. POST /user stores whatever
id it is given; a missing user is only detected when GET / or POST /add
tries to resolve it, and is answered with a 500.

# Country Matching

The input is lower-cased and matched as a substring of country names. When
several countries match, an exact name match wins, then the lowest country
code. Repeat visits are recorded as separate rows.
*/
package handlers
