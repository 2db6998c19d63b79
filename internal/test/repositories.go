package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
)

// SessionRepositoryStub stores sessions in-memory for tests.
type SessionRepositoryStub struct {
	Sessions map[string]model.Session
	Err      error

	mu sync.Mutex
}

// NewSessionRepositoryStub constructs stub repository with initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Sessions: make(map[string]model.Session)}
}

// Create stores the session unless stub has explicit error.
func (s *SessionRepositoryStub) Create(ctx context.Context, session *model.Session) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Sessions == nil {
		s.Sessions = make(map[string]model.Session)
	}
	s.Sessions[session.ID] = *session
	return nil
}

// Get fetches a session by id or returns not found.
func (s *SessionRepositoryStub) Get(ctx context.Context, id string) (*model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.Sessions[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &session, nil
}

// Delete removes a session or returns not found.
func (s *SessionRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Sessions[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Sessions, id)
	return nil
}

// ListActive returns sessions expiring after now, oldest first.
func (s *SessionRepositoryStub) ListActive(ctx context.Context, now time.Time) ([]model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var active []model.Session
	for _, session := range s.Sessions {
		if !session.Expired(now) {
			active = append(active, session)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})
	return active, nil
}

// DeleteExpired removes every session expired at now.
func (s *SessionRepositoryStub) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, session := range s.Sessions {
		if session.Expired(now) {
			delete(s.Sessions, id)
			removed++
		}
	}
	return removed, nil
}

var _ repository.SessionRepository = (*SessionRepositoryStub)(nil)
