package service

import (
	"context"
	"log"
	"sync"
	"time"

	"sentenceclash/internal/models"
	"sentenceclash/internal/quiz"
)

// SessionStore keeps one quiz session per player. Each entry has its own lock so
// a player's events are applied one at a time while different players proceed in
// parallel.
type SessionStore struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
	ttl     time.Duration
	now     func() time.Time
}

type sessionEntry struct {
	mu      sync.Mutex
	player  models.PlayerSession
	session *quiz.Session
}

// NewSessionStore creates an empty store. Sessions idle for longer than ttl are
// dropped by CleanupIdle; ttl <= 0 disables eviction.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		entries: make(map[string]*sessionEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// acquire returns the player's entry locked, creating it with newSession when the
// player has none. The caller must unlock the entry.
//
// LastSeen is refreshed under st.mu, before waiting on the entry, so CleanupIdle
// never sees a stale timestamp for a player that is about to use its session.
func (st *SessionStore) acquire(playerID string, newSession func() *quiz.Session) *sessionEntry {
	now := st.now()

	st.mu.Lock()
	e, ok := st.entries[playerID]
	if !ok {
		e = &sessionEntry{
			player:  models.PlayerSession{PlayerID: playerID, StartedAt: now},
			session: newSession(),
		}
		st.entries[playerID] = e
	}
	e.player.LastSeen = now
	st.mu.Unlock()

	e.mu.Lock()
	return e
}

// CleanupIdle removes sessions not touched within the TTL and returns how many it removed
func (st *SessionStore) CleanupIdle() int {
	if st.ttl <= 0 {
		return 0
	}
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, e := range st.entries {
		// Skip entries that are busy; they were just used
		if !e.mu.TryLock() {
			continue
		}
		if e.player.IsIdle(now, st.ttl) {
			delete(st.entries, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed
}

// RunCleanup evicts idle sessions every interval until ctx is cancelled
func (st *SessionStore) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.CleanupIdle(); n > 0 {
				log.Printf("Evicted %d idle quiz sessions", n)
			}
		}
	}
}
