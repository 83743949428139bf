// Package session keeps one academic record per session, in memory only.
// A record lives exactly as long as its session: it is created empty, read
// as snapshots, mutated only through the store, and destroyed on delete or
// idle expiry. Nothing is ever persisted.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mahir/gradeplan/internal/app/models"
	"github.com/mahir/gradeplan/internal/pkg/apperrors"
)

type entry struct {
	record   *models.AcademicRecord
	lastSeen time.Time
}

// Store is the only mutable, shared structure in the application. All engine
// packages operate on snapshots handed out here.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	logger   zerolog.Logger
	done     chan struct{}
	now      func() time.Time // replaced in tests
}

// NewStore creates a session store. Sessions idle longer than ttl are removed
// by the sweeper; a non-positive ttl disables expiry.
func NewStore(ttl time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		logger:   logger,
		done:     make(chan struct{}),
		now:      time.Now,
	}
}

// Create opens a new session with an empty record for the given program and
// returns its id.
func (s *Store) Create(program string) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &entry{
		record:   &models.AcademicRecord{Program: program},
		lastSeen: s.now(),
	}
	s.logger.Debug().Str("session", id).Str("program", program).Msg("Session created")
	return id
}

// Touch marks a session as recently used.
func (s *Store) Touch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	e.lastSeen = s.now()
	return nil
}

// Snapshot returns a deep copy of the session's record. Callers may hand the
// copy to the pure engines without any locking concerns.
func (s *Store) Snapshot(id string) (*models.AcademicRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	return e.record.Clone(), nil
}

// Update runs fn on the session's record under the store lock. This is the
// single mutation point for records; fn must not retain the record.
func (s *Store) Update(id string, fn func(*models.AcademicRecord) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	if err := fn(e.record); err != nil {
		return err
	}
	e.lastSeen = s.now()
	return nil
}

// Delete destroys a session and its record.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, id)
	}
	delete(s.sessions, id)
	s.logger.Debug().Str("session", id).Msg("Session deleted")
	return nil
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// StartSweeper launches the expiry sweeper. Stop terminates it.
func (s *Store) StartSweeper(interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop terminates the sweeper goroutine.
func (s *Store) Stop() {
	close(s.done)
}

func (s *Store) sweep() {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			s.logger.Info().Str("session", id).Msg("Session expired")
		}
	}
}
