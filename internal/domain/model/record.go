package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// OrderRecord mirrors an order row as returned by the storefront backend.
// Optional fields stay nil or empty when the backend omits them; defaults are
// applied by the normalizer only. Numeric identifiers and amounts arrive either
// as JSON numbers or strings, so they are kept raw.
type OrderRecord struct {
	OrderID       json.RawMessage  `json:"order_id"`
	CustomerName  *string          `json:"customer_name"`
	CustomerEmail *string          `json:"customer_email"`
	CreatedAt     *string          `json:"created_at"`
	TotalAmount   json.RawMessage  `json:"total_amount"`
	ShippingCost  json.RawMessage  `json:"shipping_cost"`
	Discount      json.RawMessage  `json:"discount"`
	Status        *string          `json:"status"`
	PaymentStatus *string          `json:"payment_status"`
	PaymentMethod *string          `json:"payment_method"`
	ItemsCount    json.RawMessage  `json:"items_count"`
	Items         []LineItemRecord `json:"items"`
}

// LineItemRecord mirrors a line item row.
type LineItemRecord struct {
	ProductName *string         `json:"product_name"`
	Price       json.RawMessage `json:"price"`
	Quantity    json.RawMessage `json:"quantity"`
	Size        *string         `json:"selected_size"`
	Color       *string         `json:"selected_color"`
	Image       *string         `json:"image"`
}

// CustomerRecord mirrors a customer row as returned by the storefront backend.
type CustomerRecord struct {
	ID          json.RawMessage `json:"id"`
	Name        *string         `json:"name"`
	Email       *string         `json:"email"`
	OrdersCount json.RawMessage `json:"orders_count"`
	TotalSpent  json.RawMessage `json:"total_spent"`
	CreatedAt   *string         `json:"created_at"`
}

// RawText returns the text of a JSON string or the literal of any other JSON
// value. Missing and null values yield an empty string.
func RawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	}
	return string(raw)
}
