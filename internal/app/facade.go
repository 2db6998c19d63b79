package app

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/orderview"
	"github.com/polkiloo/storeadmin/internal/usecase"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// AdminFacade joins the use cases behind the HTTP handlers and the
// notification poller.
type AdminFacade struct {
	auth          *usecase.AuthUseCase
	orders        *usecase.OrderUseCase
	customers     *usecase.CustomerUseCase
	notifications *usecase.NotificationUseCase
	health        HealthChecker
}

func NewAdminFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, customers *usecase.CustomerUseCase, notifications *usecase.NotificationUseCase, health HealthChecker) *AdminFacade {
	return &AdminFacade{
		auth:          auth,
		orders:        orders,
		customers:     customers,
		notifications: notifications,
		health:        health,
	}
}

func (f *AdminFacade) Login(ctx context.Context, email, password string) (*model.Session, string, error) {
	return f.auth.Login(ctx, email, password)
}

// Logout closes the session and drops everything cached for it.
func (f *AdminFacade) Logout(ctx context.Context, session *model.Session) error {
	if session == nil {
		return nil
	}
	if err := f.auth.Logout(ctx, session.ID); err != nil {
		return err
	}
	f.orders.Forget(session.ID)
	f.notifications.Forget(session.ID)
	return nil
}

func (f *AdminFacade) Session(ctx context.Context, token string) (*model.Session, error) {
	return f.auth.Session(ctx, token)
}

func (f *AdminFacade) Orders(ctx context.Context, session *model.Session, q usecase.OrderQuery) (orderview.Result, error) {
	return f.orders.List(ctx, session, q)
}

func (f *AdminFacade) OrderStats(ctx context.Context, session *model.Session) (orderview.Stats, error) {
	return f.orders.Stats(ctx, session)
}

func (f *AdminFacade) Order(ctx context.Context, session *model.Session, id string) (usecase.OrderDetail, error) {
	return f.orders.Get(ctx, session, id)
}

func (f *AdminFacade) UpdateOrderStatus(ctx context.Context, session *model.Session, id string, status model.OrderStatus) (usecase.OrderDetail, error) {
	return f.orders.UpdateStatus(ctx, session, id, status)
}

func (f *AdminFacade) Customers(ctx context.Context, session *model.Session, search, sort string) ([]model.Customer, error) {
	return f.customers.List(ctx, session, search, sort)
}

func (f *AdminFacade) Notifications(ctx context.Context, session *model.Session) ([]model.Notification, error) {
	return f.notifications.List(ctx, session)
}

func (f *AdminFacade) UnreadCount(ctx context.Context, session *model.Session) (usecase.UnreadCount, error) {
	return f.notifications.UnreadCount(ctx, session)
}

func (f *AdminFacade) MarkNotificationRead(ctx context.Context, session *model.Session, id string) error {
	return f.notifications.MarkRead(ctx, session, id)
}

func (f *AdminFacade) HealthCheck(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

func (f *AdminFacade) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return f.auth.PurgeExpired(ctx)
}

func (f *AdminFacade) ActiveSessions(ctx context.Context) ([]model.Session, error) {
	return f.auth.ActiveSessions(ctx)
}

func (f *AdminFacade) RefreshUnreadCount(ctx context.Context, session *model.Session) error {
	_, err := f.notifications.Refresh(ctx, session)
	return err
}

// RetainSessions drops cached state of every session not listed.
func (f *AdminFacade) RetainSessions(sessionIDs []string) {
	f.orders.Retain(sessionIDs)
	f.notifications.Retain(sessionIDs)
}
