package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// NotificationFacade exposes the subset of application functionality required by the poller.
type NotificationFacade interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
	ActiveSessions(ctx context.Context) ([]model.Session, error)
	RefreshUnreadCount(ctx context.Context, session *model.Session) error
	RetainSessions(sessionIDs []string)
}

// NotificationPoller periodically refreshes the unread notification count of
// every active session with a fixed pool of workers.
type NotificationPoller struct {
	facade       NotificationFacade
	pollInterval time.Duration
	workers      int
	logger       *slog.Logger

	jobs     chan model.Session
	inFlight atomic.Int64
	wg       sync.WaitGroup
	cancel   context.CancelFunc
	mu       sync.Mutex
}

// NewNotificationPoller constructs the poller worker pool.
func NewNotificationPoller(facade NotificationFacade, pollInterval time.Duration, workers int, logger *slog.Logger) *NotificationPoller {
	if workers <= 0 {
		workers = 1
	}
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	return &NotificationPoller{
		facade:       facade,
		pollInterval: pollInterval,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Session, workers),
	}
}

// Start launches background polling.
func (p *NotificationPoller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop cancels polling and waits for all workers to finish.
func (p *NotificationPoller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *NotificationPoller) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if pending := p.inFlight.Load(); pending > 0 {
				p.logger.Debug("previous poll still in flight, skipping tick", slog.Int64("pending", pending))
				continue
			}
			p.poll(ctx)
		}
	}
}

func (p *NotificationPoller) poll(ctx context.Context) {
	purged, err := p.facade.PurgeExpiredSessions(ctx)
	if err != nil {
		p.logger.Error("purge expired sessions failed", slog.String("error", err.Error()))
	} else if purged > 0 {
		p.logger.Info("expired sessions purged", slog.Int64("count", purged))
	}

	sessions, err := p.facade.ActiveSessions(ctx)
	if err != nil {
		p.logger.Error("list active sessions failed", slog.String("error", err.Error()))
		return
	}

	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	p.facade.RetainSessions(ids)

	for _, s := range sessions {
		p.inFlight.Add(1)
		select {
		case <-ctx.Done():
			p.inFlight.Add(-1)
			return
		case p.jobs <- s:
		}
	}
}

func (p *NotificationPoller) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case session, ok := <-p.jobs:
			if !ok {
				return
			}
			p.refresh(ctx, session)
		}
	}
}

func (p *NotificationPoller) refresh(ctx context.Context, session model.Session) {
	defer p.inFlight.Add(-1)
	if err := p.facade.RefreshUnreadCount(ctx, &session); err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Warn("refresh unread count failed",
			slog.String("session_id", session.ID),
			slog.String("error", err.Error()),
		)
	}
}
