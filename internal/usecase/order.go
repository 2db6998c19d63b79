package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/storeadmin/internal/adapter/backend"
	"github.com/polkiloo/storeadmin/internal/config"
	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/orderview"
)

// OrderQuery is one page request against the order list.
type OrderQuery struct {
	Criteria orderview.Criteria
	Page     int
	Refresh  bool
}

// OrderDetail is a single order with its rendered status timeline.
type OrderDetail struct {
	Order    model.Order
	Timeline orderview.StatusTimeline
}

// OrderUseCase serves the order view model from a per-session snapshot of the
// backend order list.
type OrderUseCase struct {
	backend  backend.Client
	pageSize int
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	snapshots map[string]*orderview.Snapshot
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(client backend.Client, cfg *config.Config, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{
		backend:   client,
		pageSize:  cfg.OrdersPageSize,
		logger:    logger,
		now:       time.Now,
		snapshots: make(map[string]*orderview.Snapshot),
	}
}

// List returns one filtered page. The snapshot is loaded on first use and
// reloaded when q.Refresh is set.
func (u *OrderUseCase) List(ctx context.Context, session *model.Session, q OrderQuery) (orderview.Result, error) {
	criteria, err := q.Criteria.Validate()
	if err != nil {
		return orderview.Result{}, err
	}
	snap, err := u.snapshot(ctx, session, q.Refresh)
	if err != nil {
		return orderview.Result{}, err
	}
	return snap.Query(criteria, q.Page, u.pageSize, u.now()), nil
}

// Stats counts the whole order list of the session.
func (u *OrderUseCase) Stats(ctx context.Context, session *model.Session) (orderview.Stats, error) {
	snap, err := u.snapshot(ctx, session, false)
	if err != nil {
		return orderview.Stats{}, err
	}
	return snap.Stats(), nil
}

// Get returns one order with its timeline.
func (u *OrderUseCase) Get(ctx context.Context, session *model.Session, id string) (OrderDetail, error) {
	snap, err := u.snapshot(ctx, session, false)
	if err != nil {
		return OrderDetail{}, err
	}
	order, ok := snap.Find(id)
	if !ok {
		return OrderDetail{}, domainErrors.ErrNotFound
	}
	return OrderDetail{Order: order, Timeline: orderview.Timeline(order.Status)}, nil
}

// UpdateStatus asks the backend to change the status and, on success, patches
// the snapshot entry. Non-forward transitions are allowed but logged.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, session *model.Session, id string, status model.OrderStatus) (OrderDetail, error) {
	if !status.Valid() {
		return OrderDetail{}, domainErrors.ErrInvalidStatus
	}

	snap, err := u.snapshot(ctx, session, false)
	if err != nil {
		return OrderDetail{}, err
	}

	current, known := snap.Find(id)
	if known && !model.IsForwardTransition(current.Status, status) {
		u.logger.Warn("non-forward order status change",
			slog.String("order_id", id),
			slog.String("from", string(current.Status)),
			slog.String("to", string(status)),
			slog.String("operator", session.Operator.Email),
		)
	}

	if err := u.backend.UpdateOrderStatus(ctx, session.BackendToken, id, status); err != nil {
		return OrderDetail{}, err
	}

	updated, ok := snap.ApplyStatus(id, status)
	if !ok {
		updated = model.Order{ID: id, Status: status}
	}
	return OrderDetail{Order: updated, Timeline: orderview.Timeline(status)}, nil
}

// Forget drops the snapshot of a closed session.
func (u *OrderUseCase) Forget(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.snapshots, sessionID)
}

// Retain drops snapshots of sessions not listed in sessionIDs.
func (u *OrderUseCase) Retain(sessionIDs []string) {
	keep := make(map[string]struct{}, len(sessionIDs))
	for _, id := range sessionIDs {
		keep[id] = struct{}{}
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	for id := range u.snapshots {
		if _, ok := keep[id]; !ok {
			delete(u.snapshots, id)
		}
	}
}

func (u *OrderUseCase) snapshot(ctx context.Context, session *model.Session, refresh bool) (*orderview.Snapshot, error) {
	u.mu.Lock()
	snap, ok := u.snapshots[session.ID]
	u.mu.Unlock()
	if ok && !refresh {
		return snap, nil
	}

	records, err := u.backend.ListOrders(ctx, session.BackendToken)
	if err != nil {
		return nil, err
	}
	orders := orderview.NormalizeAll(records)
	fetchedAt := u.now()

	u.mu.Lock()
	defer u.mu.Unlock()
	if existing, ok := u.snapshots[session.ID]; ok {
		existing.Replace(orders, fetchedAt)
		return existing, nil
	}
	snap = orderview.NewSnapshot(orders, fetchedAt)
	u.snapshots[session.ID] = snap
	return snap, nil
}
