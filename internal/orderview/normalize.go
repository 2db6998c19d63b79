// Package orderview implements the order management view model: record
// normalization, aggregate counts, filtering, sorting, pagination and status
// timelines over an in-memory order snapshot.
package orderview

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// MissingCustomerName is displayed when the backend omits the customer name.
const MissingCustomerName = "N/A"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize shapes a raw backend row into an Order with defaults applied.
func Normalize(rec model.OrderRecord) model.Order {
	order := model.Order{
		ID:            model.RawText(rec.OrderID),
		CustomerName:  MissingCustomerName,
		CustomerEmail: deref(rec.CustomerEmail),
		CreatedAt:     ParseTime(deref(rec.CreatedAt)),
		TotalAmount:   Amount(rec.TotalAmount),
		ShippingCost:  Amount(rec.ShippingCost),
		Discount:      Amount(rec.Discount),
		Status:        model.OrderStatus(deref(rec.Status)),
		PaymentStatus: model.PaymentStatus(deref(rec.PaymentStatus)),
		PaymentMethod: deref(rec.PaymentMethod),
	}
	if name := strings.TrimSpace(deref(rec.CustomerName)); name != "" {
		order.CustomerName = name
	}

	if len(rec.Items) > 0 {
		order.Items = make([]model.LineItem, 0, len(rec.Items))
		for _, item := range rec.Items {
			order.Items = append(order.Items, normalizeItem(item))
		}
	}

	order.ItemsCount = len(order.Items)
	if n, ok := parseCount(rec.ItemsCount); ok {
		order.ItemsCount = n
	}

	return order
}

// NormalizeAll maps every record, preserving order.
func NormalizeAll(recs []model.OrderRecord) []model.Order {
	orders := make([]model.Order, 0, len(recs))
	for _, rec := range recs {
		orders = append(orders, Normalize(rec))
	}
	return orders
}

func normalizeItem(rec model.LineItemRecord) model.LineItem {
	item := model.LineItem{
		ProductName: deref(rec.ProductName),
		UnitPrice:   Amount(rec.Price),
		Size:        deref(rec.Size),
		Color:       deref(rec.Color),
		Image:       deref(rec.Image),
		Quantity:    Int(rec.Quantity),
	}
	return item
}

// Amount coerces a raw JSON number or numeric string to a decimal.
// Missing, null and non-numeric values yield zero.
func Amount(raw json.RawMessage) decimal.Decimal {
	s := model.RawText(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Int coerces a raw JSON integer or integral numeric string. Missing, null,
// fractional and non-numeric values yield zero.
func Int(raw json.RawMessage) int {
	n, _ := parseCount(raw)
	return n
}

func parseCount(raw json.RawMessage) (int, bool) {
	d, err := decimal.NewFromString(model.RawText(raw))
	if err != nil || !d.IsInteger() {
		return 0, false
	}
	return int(d.IntPart()), true
}

// ParseTime accepts RFC 3339 and the common SQL timestamp layouts. Empty and
// unparseable values yield the zero time.
func ParseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NormalizeCustomer shapes a raw customer row, defaulting missing values to zero.
func NormalizeCustomer(rec model.CustomerRecord) model.Customer {
	c := model.Customer{
		ID:          model.RawText(rec.ID),
		Name:        strings.TrimSpace(deref(rec.Name)),
		Email:       strings.TrimSpace(deref(rec.Email)),
		OrdersCount: Int(rec.OrdersCount),
		TotalSpent:  Amount(rec.TotalSpent),
		JoinedAt:    ParseTime(deref(rec.CreatedAt)),
	}
	return c
}

// NormalizeCustomers maps every customer record, preserving order.
func NormalizeCustomers(recs []model.CustomerRecord) []model.Customer {
	out := make([]model.Customer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, NormalizeCustomer(rec))
	}
	return out
}
