package test

import (
	"context"
	"sync"

	"github.com/polkiloo/storeadmin/internal/adapter/backend"
	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// StatusUpdateCall stores information about UpdateOrderStatus invocations.
type StatusUpdateCall struct {
	Token   string
	OrderID string
	Status  model.OrderStatus
}

// BackendClientStub serves canned backend data and records calls.
type BackendClientStub struct {
	LoginFn         func(context.Context, string, string) (*backend.LoginResult, error)
	OrdersFn        func(context.Context, string) ([]model.OrderRecord, error)
	UpdateFn        func(context.Context, string, string, model.OrderStatus) error
	CustomersFn     func(context.Context, string) ([]model.CustomerRecord, error)
	NotificationsFn func(context.Context, string) ([]model.Notification, error)
	UnreadFn        func(context.Context, string) (int, error)
	MarkReadFn      func(context.Context, string, string) error

	Orders        []model.OrderRecord
	Customers     []model.CustomerRecord
	Notifications []model.Notification
	Unread        int

	mu          sync.Mutex
	ordersCalls int
	unreadCalls int
	Updates     []StatusUpdateCall
	MarkedRead  []string
}

// Login returns an operator bound to backend token "backend-token" unless overridden.
func (s *BackendClientStub) Login(ctx context.Context, email, password string) (*backend.LoginResult, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &backend.LoginResult{
		Token:    "backend-token",
		Operator: model.Operator{ID: "1", Name: "Operator", Email: email, Role: "admin"},
	}, nil
}

// ListOrders returns configured order rows.
func (s *BackendClientStub) ListOrders(ctx context.Context, token string) ([]model.OrderRecord, error) {
	s.mu.Lock()
	s.ordersCalls++
	s.mu.Unlock()
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, token)
	}
	return s.Orders, nil
}

// UpdateOrderStatus records update requests.
func (s *BackendClientStub) UpdateOrderStatus(ctx context.Context, token, orderID string, status model.OrderStatus) error {
	s.mu.Lock()
	s.Updates = append(s.Updates, StatusUpdateCall{Token: token, OrderID: orderID, Status: status})
	s.mu.Unlock()
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, token, orderID, status)
	}
	return nil
}

// ListCustomers returns configured customer rows.
func (s *BackendClientStub) ListCustomers(ctx context.Context, token string) ([]model.CustomerRecord, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx, token)
	}
	return s.Customers, nil
}

// ListNotifications returns configured notifications.
func (s *BackendClientStub) ListNotifications(ctx context.Context, token string) ([]model.Notification, error) {
	if s.NotificationsFn != nil {
		return s.NotificationsFn(ctx, token)
	}
	return s.Notifications, nil
}

// UnreadNotifications returns the configured unread count.
func (s *BackendClientStub) UnreadNotifications(ctx context.Context, token string) (int, error) {
	s.mu.Lock()
	s.unreadCalls++
	s.mu.Unlock()
	if s.UnreadFn != nil {
		return s.UnreadFn(ctx, token)
	}
	return s.Unread, nil
}

// MarkNotificationRead records the notification id.
func (s *BackendClientStub) MarkNotificationRead(ctx context.Context, token, id string) error {
	if s.MarkReadFn != nil {
		return s.MarkReadFn(ctx, token, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.MarkedRead = append(s.MarkedRead, id)
	return nil
}

// OrdersCalls reports how many times ListOrders was invoked.
func (s *BackendClientStub) OrdersCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ordersCalls
}

// UnreadCalls reports how many times UnreadNotifications was invoked.
func (s *BackendClientStub) UnreadCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCalls
}

var _ backend.Client = (*BackendClientStub)(nil)
