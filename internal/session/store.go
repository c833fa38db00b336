// Package session keeps in-memory chat histories with TTL-based expiry.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Govind-17/chat-with-syllbus/internal/model"
	"github.com/Govind-17/chat-with-syllbus/internal/pkg/errors"
)

const DefaultTTL = 86400 * time.Second

type session struct {
	id        string
	createdAt time.Time
	messages  []model.Message
}

// Store is a concurrency-safe session registry. Expiry is measured from
// the last message, or from creation while a session is still empty.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create registers a new empty session and returns its id.
func (s *Store) Create() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.sessions[id] = &session{id: id, createdAt: s.now()}
	return id
}

// Ensure returns id if the session exists, otherwise creates a fresh
// session and returns the new id.
func (s *Store) Ensure(id string) string {
	s.mu.Lock()
	if _, ok := s.sessions[id]; ok {
		s.mu.Unlock()
		return id
	}
	s.mu.Unlock()
	return s.Create()
}

func (s *Store) Append(id string, msg model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return errors.ErrNotFound
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}
	sess.messages = append(sess.messages, msg)
	return nil
}

func (s *Store) Get(id string) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	out := make([]model.Message, len(sess.messages))
	copy(out, sess.messages)
	return out, nil
}

func (s *Store) List() []model.SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	infos := make([]model.SessionInfo, 0, len(s.sessions))
	for _, sess := range s.sessions {
		infos = append(infos, model.SessionInfo{
			SessionID:    sess.id,
			MessageCount: len(sess.messages),
			UpdatedAt:    s.lastActivityLocked(sess),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].UpdatedAt.After(infos[j].UpdatedAt)
	})
	return infos
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return errors.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Prune drops every session whose last activity is older than the TTL
// and reports how many were removed.
func (s *Store) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if s.lastActivityLocked(sess).Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) lastActivityLocked(sess *session) time.Time {
	if n := len(sess.messages); n > 0 {
		return sess.messages[n-1].Timestamp
	}
	return sess.createdAt
}
