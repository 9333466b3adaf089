// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth signs and verifies session cookies.

There is no login: a session only remembers which user a browser is acting
as. The signature stops clients from forging another browser's session id.

# Session IDs

Session ids are random UUIDs:

	id := auth.NewSessionID()

# Cookie Values

Cookies carry the id and an HMAC-SHA256 signature keyed by SESSION_SECRET:

	value := auth.EncodeCookie(id, secret)
	id, err := auth.DecodeCookie(value, secret)

The signature is URL-safe base64 without padding. DecodeCookie returns
ErrInvalidSession for malformed values, non-UUID ids, and bad signatures.
*/
package auth
