package app

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/johnmiko/crib/internal/log"
)

// Store holds live sessions by game id. It only isolates sessions from
// each other; callers still serialize access to any single session.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*storeEntry
	ttl      time.Duration
	log      logrus.FieldLogger
}

type storeEntry struct {
	session    *Session
	lastActive time.Time
}

// NewStore creates a session store. Sessions idle longer than ttl are
// removed by Evict; a ttl of 0 disables expiry.
func NewStore(ttl time.Duration, logger logrus.FieldLogger) *Store {
	if logger == nil {
		logger = log.Default
	}
	return &Store{
		sessions: make(map[string]*storeEntry),
		ttl:      ttl,
		log:      logger,
	}
}

// Create starts a new session and registers it.
func (st *Store) Create(opts Options) (*Session, error) {
	session, err := NewSession(opts)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	st.sessions[session.ID] = &storeEntry{session: session, lastActive: time.Now()}
	st.mu.Unlock()
	return session, nil
}

// Get returns the session with the given id and refreshes its idle timer.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	entry, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	entry.lastActive = time.Now()
	return entry.session, true
}

// Delete removes a session, reporting whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Evict drops sessions idle beyond the ttl and returns how many were
// removed. Hosts call this periodically.
func (st *Store) Evict(now time.Time) int {
	if st.ttl <= 0 {
		return 0
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, entry := range st.sessions {
		if now.Sub(entry.lastActive) > st.ttl {
			delete(st.sessions, id)
			removed++
			st.log.WithField("game_id", id).Debug("evicted idle session")
		}
	}
	return removed
}
