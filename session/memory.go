// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	userID  int64
	expires time.Time
}

// maxSweepInterval bounds how long expired sessions can linger when the TTL is long
const maxSweepInterval = time.Minute

// MemoryBackend keeps sessions in process memory. Sessions are lost on restart.
// Expired sessions are swept on Put, at most once per sweep interval.
type MemoryBackend struct {
	mu        sync.RWMutex
	sessions  map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryBackend(ttl time.Duration) *MemoryBackend {
	return &MemoryBackend{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (b *MemoryBackend) Get(_ context.Context, sessionID string) (int64, bool, error) {
	b.mu.RLock()
	e, ok := b.sessions[sessionID]
	b.mu.RUnlock()

	if !ok {
		return 0, false, nil
	}
	if b.ttl > 0 && b.now().After(e.expires) {
		b.mu.Lock()
		delete(b.sessions, sessionID)
		b.mu.Unlock()
		return 0, false, nil
	}
	return e.userID, true, nil
}

func (b *MemoryBackend) Put(_ context.Context, sessionID string, userID int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	b.sweep(now)
	b.sessions[sessionID] = memoryEntry{userID: userID, expires: now.Add(b.ttl)}
	return nil
}

// sweep drops expired sessions. Callers hold the write lock.
func (b *MemoryBackend) sweep(now time.Time) {
	if b.ttl <= 0 {
		return
	}
	interval := min(b.ttl, maxSweepInterval)
	if now.Sub(b.lastSweep) < interval {
		return
	}
	b.lastSweep = now

	for id, e := range b.sessions {
		if now.After(e.expires) {
			delete(b.sessions, id)
		}
	}
}

// Len reports the number of stored sessions, including expired ones not yet evicted
func (b *MemoryBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.sessions)
}
