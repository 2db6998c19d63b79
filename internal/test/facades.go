package test

import (
	"context"
	"sync"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// WorkerFacadeStub mimics the poller's view of the admin facade.
type WorkerFacadeStub struct {
	Sessions  []model.Session
	PurgeFn   func(context.Context) (int64, error)
	ActiveFn  func(context.Context) ([]model.Session, error)
	RefreshFn func(context.Context, *model.Session) error

	mu        sync.Mutex
	purges    int
	refreshed []string
	retained  [][]string
}

// PurgeExpiredSessions counts purge calls.
func (s *WorkerFacadeStub) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	s.mu.Lock()
	s.purges++
	s.mu.Unlock()
	if s.PurgeFn != nil {
		return s.PurgeFn(ctx)
	}
	return 0, nil
}

// ActiveSessions returns configured sessions.
func (s *WorkerFacadeStub) ActiveSessions(ctx context.Context) ([]model.Session, error) {
	if s.ActiveFn != nil {
		return s.ActiveFn(ctx)
	}
	return s.Sessions, nil
}

// RefreshUnreadCount records refreshed session ids.
func (s *WorkerFacadeStub) RefreshUnreadCount(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	s.refreshed = append(s.refreshed, session.ID)
	s.mu.Unlock()
	if s.RefreshFn != nil {
		return s.RefreshFn(ctx, session)
	}
	return nil
}

// RetainSessions records retained id sets.
func (s *WorkerFacadeStub) RetainSessions(sessionIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retained = append(s.retained, append([]string(nil), sessionIDs...))
}

// Purges reports how many purge calls were made.
func (s *WorkerFacadeStub) Purges() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.purges
}

// Refreshed returns a copy of refreshed session ids.
func (s *WorkerFacadeStub) Refreshed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.refreshed...)
}

// Retained returns a copy of every retained id set.
func (s *WorkerFacadeStub) Retained() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]string(nil), s.retained...)
}
