package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// PaymentStatus describes whether funds were captured. It is independent of OrderStatus.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentStatuses lists every payment status.
var PaymentStatuses = []PaymentStatus{PaymentStatusPaid, PaymentStatusPending, PaymentStatusFailed}

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	for _, known := range PaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsForwardTransition reports whether moving from one status to another follows
// pending -> processing -> shipped -> delivered, with cancelled reachable from
// any non-terminal status. Nothing enforces it; operators may override.
func IsForwardTransition(from, to OrderStatus) bool {
	if from == OrderStatusDelivered || from == OrderStatusCancelled {
		return false
	}
	if to == OrderStatusCancelled {
		return true
	}
	fromIdx, toIdx := -1, -1
	for i, s := range OrderStatuses[:4] {
		if s == from {
			fromIdx = i
		}
		if s == to {
			toIdx = i
		}
	}
	return fromIdx >= 0 && toIdx == fromIdx+1
}

// LineItem is a single purchased product inside an order.
type LineItem struct {
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size,omitempty"`
	Color       string          `json:"color,omitempty"`
	Image       string          `json:"image,omitempty"`
}

// Order is a normalized customer purchase.
type Order struct {
	ID            string          `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	CreatedAt     time.Time       `json:"created_at"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ShippingCost  decimal.Decimal `json:"shipping_cost"`
	Discount      decimal.Decimal `json:"discount"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentMethod string          `json:"payment_method"`
	ItemsCount    int             `json:"items_count"`
	Items         []LineItem      `json:"items"`
}
