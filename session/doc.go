// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session tracks which user each request acts as.

There is no authentication. The "current user" is a pointer that the
user-switch and new-user endpoints move and every other endpoint reads.

# Modes

Shared keeps one pointer for the whole process. Every browser sees the same
current user and a switch by one client affects all of them:

	mgr := session.NewShared(cfg.DefaultUserID)

CookieManager keeps one pointer per browser, keyed by a signed cookie:

	mgr := session.NewCookieManager(backend, cfg.SessionSecret, cfg.DefaultUserID)

A request without a valid session acts as the default user. The first
switch starts a session and sets the tracker_session cookie.

# Backends

Cookie sessions are stored in a Backend:

  - MemoryBackend: in-process map with expiry
  - RedisBackend: Redis keys tracker:session:<id> with TTL

Neither mode checks that the pointed-at user exists. A stale pointer shows
up as a failed lookup on the next page render.
*/
package session
