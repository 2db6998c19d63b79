package orderview

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// CustomerSort selects the customer list comparator.
type CustomerSort string

const (
	SortByName   CustomerSort = "name"
	SortByEmail  CustomerSort = "email"
	SortByOrders CustomerSort = "orders"
	SortBySpent  CustomerSort = "spent"
	SortByDate   CustomerSort = "date"
)

// ParseCustomerSort maps unknown or empty keys to SortByDate.
func ParseCustomerSort(key string) CustomerSort {
	switch s := CustomerSort(strings.ToLower(strings.TrimSpace(key))); s {
	case SortByName, SortByEmail, SortByOrders, SortBySpent, SortByDate:
		return s
	default:
		return SortByDate
	}
}

// FilterCustomers keeps customers whose name or email contains search, case-insensitively.
func FilterCustomers(customers []model.Customer, search string) []model.Customer {
	query := strings.ToLower(strings.TrimSpace(search))
	out := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if query == "" ||
			strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Email), query) {
			out = append(out, c)
		}
	}
	return out
}

// SortCustomers sorts in place. Name and email use locale collation in
// ascending order; order count and spend are descending; join date is newest first.
func SortCustomers(customers []model.Customer, key CustomerSort, locale language.Tag) {
	var less func(a, b model.Customer) bool
	switch key {
	case SortByName, SortByEmail:
		col := collate.New(locale)
		field := func(c model.Customer) string { return c.Name }
		if key == SortByEmail {
			field = func(c model.Customer) string { return c.Email }
		}
		less = func(a, b model.Customer) bool {
			return col.CompareString(field(a), field(b)) < 0
		}
	case SortByOrders:
		less = func(a, b model.Customer) bool { return a.OrdersCount > b.OrdersCount }
	case SortBySpent:
		less = func(a, b model.Customer) bool { return a.TotalSpent.GreaterThan(b.TotalSpent) }
	default:
		less = func(a, b model.Customer) bool { return a.JoinedAt.After(b.JoinedAt) }
	}
	sort.SliceStable(customers, func(i, j int) bool {
		return less(customers[i], customers[j])
	})
}
