package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a storefront shopper as listed in the admin console.
type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	OrdersCount int             `json:"orders_count"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	JoinedAt    time.Time       `json:"created_at"`
}
