// Package session holds the per-session state of the application: the
// fetched comment collection, its sentiment annotations, and the Q&A
// history. Nothing here survives a process restart.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Seriphap/Youtube-Comment-Analysis-byGemini/internal/domain"
)

// Session is the explicit per-session context object. All access goes
// through the Store, which serializes it; callbacks must not retain
// references past their call.
type Session struct {
	ID         string
	State      domain.SessionState
	VideoID    string
	VideoTitle string
	// Comments is the ordered collection from the last successful
	// fetch. Records are never mutated; Sentiments is the parallel
	// annotation slice, nil until classification has run.
	Comments   []domain.Comment
	Sentiments []domain.Sentiment
	History    []domain.QAExchange
	CreatedAt  time.Time
	LastAccess time.Time
}

// ResetVideo drops the cached collection when the session switches to
// a different video reference.
func (s *Session) ResetVideo() {
	s.VideoID = ""
	s.VideoTitle = ""
	s.Comments = nil
	s.Sentiments = nil
	s.State = domain.SessionStateIdle
}

// Store is an in-memory session registry guarded by a RWMutex, with a
// background sweeper that evicts sessions idle past the TTL.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewStore creates a Store. Sessions idle for longer than ttl are
// evicted by the sweeper once started.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}
}

// Create registers a new idle session and returns its id.
func (s *Store) Create() string {
	now := time.Now()
	sess := &Session{
		ID:         uuid.New().String(),
		State:      domain.SessionStateIdle,
		CreatedAt:  now,
		LastAccess: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess.ID
}

// View runs fn with access to the session, refreshing its last-access
// time. fn must not mutate the session; use Update for that. Returns
// domain.ErrSessionNotFound for unknown ids.
func (s *Store) View(id string, fn func(*Session) error) error {
	return s.Update(id, fn)
}

// Update runs fn with exclusive access to the session, refreshing its
// last-access time. Returns domain.ErrSessionNotFound for unknown ids.
func (s *Store) Update(id string, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	sess.LastAccess = time.Now()
	return fn(sess)
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper begins evicting expired sessions every interval.
func (s *Store) StartSweeper(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.stopChan:
				return
			}
		}
	}()
}

func (s *Store) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.LastAccess.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()
}

// StopSweeper stops the background sweeper.
func (s *Store) StopSweeper() {
	close(s.stopChan)
	s.wg.Wait()
}
