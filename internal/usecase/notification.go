package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/polkiloo/storeadmin/internal/adapter/backend"
	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// UnreadCount is the last known unread notification count of a session.
type UnreadCount struct {
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationBoard caches unread counts per session. It is safe for concurrent use.
type NotificationBoard struct {
	mu     sync.RWMutex
	counts map[string]UnreadCount
}

// NewNotificationBoard creates an empty board.
func NewNotificationBoard() *NotificationBoard {
	return &NotificationBoard{counts: make(map[string]UnreadCount)}
}

// Set records the count for a session.
func (b *NotificationBoard) Set(sessionID string, count int, at time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.counts[sessionID] = UnreadCount{Count: count, UpdatedAt: at}
}

// Get returns the cached count for a session.
func (b *NotificationBoard) Get(sessionID string) (UnreadCount, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.counts[sessionID]
	return c, ok
}

// Forget removes a session from the board.
func (b *NotificationBoard) Forget(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.counts, sessionID)
}

// Retain drops every session not listed in ids.
func (b *NotificationBoard) Retain(ids []string) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for id := range b.counts {
		if _, ok := keep[id]; !ok {
			delete(b.counts, id)
		}
	}
}

// Len reports how many sessions have a cached count.
func (b *NotificationBoard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.counts)
}

// NotificationUseCase proxies notification endpoints and keeps the board fresh.
type NotificationUseCase struct {
	backend backend.Client
	board   *NotificationBoard
	now     func() time.Time
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(client backend.Client, board *NotificationBoard) *NotificationUseCase {
	return &NotificationUseCase{backend: client, board: board, now: time.Now}
}

// List returns the session's notifications.
func (u *NotificationUseCase) List(ctx context.Context, session *model.Session) ([]model.Notification, error) {
	return u.backend.ListNotifications(ctx, session.BackendToken)
}

// UnreadCount serves the cached count, fetching it when the poller has not
// seen the session yet.
func (u *NotificationUseCase) UnreadCount(ctx context.Context, session *model.Session) (UnreadCount, error) {
	if cached, ok := u.board.Get(session.ID); ok {
		return cached, nil
	}
	return u.Refresh(ctx, session)
}

// Refresh fetches the unread count from the backend and records it.
func (u *NotificationUseCase) Refresh(ctx context.Context, session *model.Session) (UnreadCount, error) {
	count, err := u.backend.UnreadNotifications(ctx, session.BackendToken)
	if err != nil {
		return UnreadCount{}, err
	}
	at := u.now()
	u.board.Set(session.ID, count, at)
	return UnreadCount{Count: count, UpdatedAt: at}, nil
}

// MarkRead flags a notification as read. The cached count is dropped so the
// next read fetches it again.
func (u *NotificationUseCase) MarkRead(ctx context.Context, session *model.Session, id string) error {
	if err := u.backend.MarkNotificationRead(ctx, session.BackendToken, id); err != nil {
		return err
	}
	u.board.Forget(session.ID)
	return nil
}

// Forget drops the cached count of a closed session.
func (u *NotificationUseCase) Forget(sessionID string) {
	u.board.Forget(sessionID)
}

// Retain drops cached counts of sessions that are no longer active.
func (u *NotificationUseCase) Retain(sessionIDs []string) {
	u.board.Retain(sessionIDs)
}
