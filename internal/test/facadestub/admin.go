// Package facadestub provides a controllable admin facade for HTTP layer tests.
package facadestub

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/orderview"
	"github.com/polkiloo/storeadmin/internal/usecase"
)

// Admin implements every HTTP facade through optional function overrides.
// Methods without an override return a small successful default.
type Admin struct {
	LoginFn         func(context.Context, string, string) (*model.Session, string, error)
	LogoutFn        func(context.Context, *model.Session) error
	SessionFn       func(context.Context, string) (*model.Session, error)
	OrdersFn        func(context.Context, *model.Session, usecase.OrderQuery) (orderview.Result, error)
	StatsFn         func(context.Context, *model.Session) (orderview.Stats, error)
	OrderFn         func(context.Context, *model.Session, string) (usecase.OrderDetail, error)
	UpdateFn        func(context.Context, *model.Session, string, model.OrderStatus) (usecase.OrderDetail, error)
	CustomersFn     func(context.Context, *model.Session, string, string) ([]model.Customer, error)
	NotificationsFn func(context.Context, *model.Session) ([]model.Notification, error)
	UnreadFn        func(context.Context, *model.Session) (usecase.UnreadCount, error)
	MarkReadFn      func(context.Context, *model.Session, string) error
	HealthFn        func(context.Context) error
}

// DefaultSession is returned by Login and Session when not overridden.
var DefaultSession = &model.Session{
	ID:           "session-1",
	Operator:     model.Operator{ID: "1", Name: "Operator", Email: "ops@shop.io", Role: "admin"},
	BackendToken: "backend-token",
}

func (a Admin) Login(ctx context.Context, email, password string) (*model.Session, string, error) {
	if a.LoginFn != nil {
		return a.LoginFn(ctx, email, password)
	}
	return DefaultSession, "token", nil
}

func (a Admin) Logout(ctx context.Context, session *model.Session) error {
	if a.LogoutFn != nil {
		return a.LogoutFn(ctx, session)
	}
	return nil
}

func (a Admin) Session(ctx context.Context, token string) (*model.Session, error) {
	if a.SessionFn != nil {
		return a.SessionFn(ctx, token)
	}
	return DefaultSession, nil
}

func (a Admin) Orders(ctx context.Context, session *model.Session, q usecase.OrderQuery) (orderview.Result, error) {
	if a.OrdersFn != nil {
		return a.OrdersFn(ctx, session, q)
	}
	return orderview.Result{Orders: []model.Order{{ID: "1", Status: model.OrderStatusPending}}, MatchCount: 1, Page: 1, PageSize: 10, TotalPages: 1}, nil
}

func (a Admin) OrderStats(ctx context.Context, session *model.Session) (orderview.Stats, error) {
	if a.StatsFn != nil {
		return a.StatsFn(ctx, session)
	}
	return orderview.Count(nil), nil
}

func (a Admin) Order(ctx context.Context, session *model.Session, id string) (usecase.OrderDetail, error) {
	if a.OrderFn != nil {
		return a.OrderFn(ctx, session, id)
	}
	return usecase.OrderDetail{
		Order:    model.Order{ID: id, Status: model.OrderStatusPending},
		Timeline: orderview.Timeline(model.OrderStatusPending),
	}, nil
}

func (a Admin) UpdateOrderStatus(ctx context.Context, session *model.Session, id string, status model.OrderStatus) (usecase.OrderDetail, error) {
	if a.UpdateFn != nil {
		return a.UpdateFn(ctx, session, id, status)
	}
	return usecase.OrderDetail{
		Order:    model.Order{ID: id, Status: status},
		Timeline: orderview.Timeline(status),
	}, nil
}

func (a Admin) Customers(ctx context.Context, session *model.Session, search, sort string) ([]model.Customer, error) {
	if a.CustomersFn != nil {
		return a.CustomersFn(ctx, session, search, sort)
	}
	return []model.Customer{{ID: "1", Name: "Ann"}}, nil
}

func (a Admin) Notifications(ctx context.Context, session *model.Session) ([]model.Notification, error) {
	if a.NotificationsFn != nil {
		return a.NotificationsFn(ctx, session)
	}
	return nil, nil
}

func (a Admin) UnreadCount(ctx context.Context, session *model.Session) (usecase.UnreadCount, error) {
	if a.UnreadFn != nil {
		return a.UnreadFn(ctx, session)
	}
	return usecase.UnreadCount{Count: 2}, nil
}

func (a Admin) MarkNotificationRead(ctx context.Context, session *model.Session, id string) error {
	if a.MarkReadFn != nil {
		return a.MarkReadFn(ctx, session, id)
	}
	return nil
}

func (a Admin) HealthCheck(ctx context.Context) error {
	if a.HealthFn != nil {
		return a.HealthFn(ctx)
	}
	return nil
}
