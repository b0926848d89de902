package store

import (
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"worldcup-stats-service/internal/domain/results"
	"worldcup-stats-service/internal/metrics"
	"worldcup-stats-service/internal/resultlist"
)

// ErrSessionNotFound is returned for unknown or evicted session ids.
var ErrSessionNotFound = errors.New("table session not found")

const defaultMaxSessions = 256

// Session owns one result list. Access to the manager is serialised by Do.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu      sync.Mutex
	manager *resultlist.Manager
}

// Do runs fn with exclusive access to the session's manager.
func (s *Session) Do(fn func(m *resultlist.Manager) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.manager)
}

// SessionStore maps session ids to result lists. Once full, creating a session evicts the oldest.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	order    []string
	max      int
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewSessionStore constructs a store holding at most maxSessions sessions.
func NewSessionStore(maxSessions int, recorder *metrics.Recorder) *SessionStore {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		max:      maxSessions,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Create starts a collapsed session over teams.
func (s *SessionStore) Create(teams []results.TeamRecord) (*Session, error) {
	m, err := resultlist.New(teams)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		CreatedAt: now,
		manager:   m,
	}

	for len(s.order) >= s.max {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.sessions, oldest)
		s.metrics.RecordSessionEvicted()
	}
	s.sessions[sess.ID] = sess
	s.order = append(s.order, sess.ID)
	s.metrics.RecordSessionOpened()
	return sess, nil
}

// Get looks up a session by id.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete drops a session. Unknown ids are ignored.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return
	}
	delete(s.sessions, id)
	for i, sid := range s.order {
		if sid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len reports how many sessions are live.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
