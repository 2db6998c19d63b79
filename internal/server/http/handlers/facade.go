package handlers

import (
	"context"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/orderview"
	"github.com/polkiloo/storeadmin/internal/usecase"
)

// AuthFacade describes session capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.Session, string, error)
	Logout(ctx context.Context, session *model.Session) error
	Session(ctx context.Context, token string) (*model.Session, error)
}

// OrderFacade encapsulates the order view model exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, session *model.Session, q usecase.OrderQuery) (orderview.Result, error)
	OrderStats(ctx context.Context, session *model.Session) (orderview.Stats, error)
	Order(ctx context.Context, session *model.Session, id string) (usecase.OrderDetail, error)
	UpdateOrderStatus(ctx context.Context, session *model.Session, id string, status model.OrderStatus) (usecase.OrderDetail, error)
}

// CustomerFacade provides the customer list.
type CustomerFacade interface {
	Customers(ctx context.Context, session *model.Session, search, sort string) ([]model.Customer, error)
}

// NotificationFacade provides notification operations.
type NotificationFacade interface {
	Notifications(ctx context.Context, session *model.Session) ([]model.Notification, error)
	UnreadCount(ctx context.Context, session *model.Session) (usecase.UnreadCount, error)
	MarkNotificationRead(ctx context.Context, session *model.Session, id string) error
}

// HealthFacade reports dependency health.
type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// AdminFacade aggregates the full set of operations used across handlers.
type AdminFacade interface {
	AuthFacade
	OrderFacade
	CustomerFacade
	NotificationFacade
	HealthFacade
}
