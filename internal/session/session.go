// Package session holds per-user form state and scopes the letter cache so
// generated letters are never shared across users.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/covercraft/internal/lettercache"
	"github.com/jonathan/covercraft/internal/placeholder"
)

// DefaultTTL is how long an idle session survives.
const DefaultTTL = 2 * time.Hour

// Session is the mutable state of one user's form flow. All access goes
// through the owning Store; a Session is not safe for use from multiple
// goroutines without the store's lock discipline (one request at a time per
// session, per the execution model).
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	// Inputs
	ResumeText     string
	ResumeFilename string
	ResumeTokens   int
	JobDescText    string
	JobDescTokens  int

	// Generation output
	Letter string
	Fields []placeholder.Field

	// Personalization
	Values             map[string]string
	PersonalizedLetter string

	// Letter cache, scoped to this session
	Cache *lettercache.Cache

	lastSeen time.Time
}

// Personalized reports whether a personalized letter is ready for export.
func (s *Session) Personalized() bool {
	return s.PersonalizedLetter != ""
}

// RequiredLabels returns the labels the personalization form must fill.
func (s *Session) RequiredLabels() []string {
	labels := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		labels = append(labels, f.Label)
	}
	return labels
}

// ResetGeneration drops generation and personalization state, keeping the
// inputs. Called when either input changes.
func (s *Session) ResetGeneration() {
	s.Letter = ""
	s.Fields = nil
	s.Values = nil
	s.PersonalizedLetter = ""
}

// Store is an in-memory session store with idle expiry.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	cacheTTL time.Duration
	now      func() time.Time
}

// NewStore creates a Store. Sessions idle longer than ttl are dropped;
// cacheTTL configures each session's letter cache.
func NewStore(ttl, cacheTTL time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Create adds a new session and returns it.
func (st *Store) Create() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		Cache:     lettercache.New(st.cacheTTL),
		lastSeen:  now,
	}
	st.sessions[s.ID] = s
	return s
}

// Get returns the session with the given ID, refreshing its idle timer.
// Expired sessions are treated as absent.
func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	now := st.now()
	if now.Sub(s.lastSeen) > st.ttl {
		delete(st.sessions, id)
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

// Delete removes a single session.
func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Clear removes all sessions.
func (st *Store) Clear() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions = make(map[uuid.UUID]*Session)
}

// Expire sweeps idle sessions and returns how many were removed.
func (st *Store) Expire() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	removed := 0
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
