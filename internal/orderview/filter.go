package orderview

import (
	"math"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// FilterAll disables a status or payment filter.
const FilterAll = "all"

// DateRange buckets orders by age.
type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week"
	DateRangeMonth DateRange = "month"
)

// Criteria holds the user-chosen constraints of the order list view.
type Criteria struct {
	Search    string
	Status    string
	Payment   string
	DateRange DateRange
}

// Validate normalizes empty values to "all" and rejects unknown filter values.
func (c Criteria) Validate() (Criteria, error) {
	if c.Status == "" {
		c.Status = FilterAll
	}
	if c.Payment == "" {
		c.Payment = FilterAll
	}
	if c.DateRange == "" {
		c.DateRange = DateRangeAll
	}
	if c.Status != FilterAll && !model.OrderStatus(c.Status).Valid() {
		return c, domainErrors.ErrInvalidFilter
	}
	if c.Payment != FilterAll && !model.PaymentStatus(c.Payment).Valid() {
		return c, domainErrors.ErrInvalidFilter
	}
	switch c.DateRange {
	case DateRangeAll, DateRangeToday, DateRangeWeek, DateRangeMonth:
	default:
		return c, domainErrors.ErrInvalidFilter
	}
	return c, nil
}

// Filter returns the orders matching every criterion. The input slice is not modified.
func Filter(orders []model.Order, c Criteria, now time.Time) []model.Order {
	query := strings.ToLower(c.Search)
	matched := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if !matchesSearch(o, c.Search, query) {
			continue
		}
		if c.Status != "" && c.Status != FilterAll && string(o.Status) != c.Status {
			continue
		}
		if c.Payment != "" && c.Payment != FilterAll && string(o.PaymentStatus) != c.Payment {
			continue
		}
		if !withinRange(o.CreatedAt, c.DateRange, now) {
			continue
		}
		matched = append(matched, o)
	}
	return matched
}

func matchesSearch(o model.Order, raw, lower string) bool {
	if raw == "" {
		return true
	}
	return strings.Contains(o.ID, raw) ||
		strings.Contains(strings.ToLower(o.CustomerName), lower) ||
		strings.Contains(strings.ToLower(o.CustomerEmail), lower)
}

// DaysSince returns the whole days elapsed between created and now, floored.
func DaysSince(created, now time.Time) int {
	return int(math.Floor(now.Sub(created).Hours() / 24))
}

func withinRange(created time.Time, r DateRange, now time.Time) bool {
	switch r {
	case DateRangeToday:
		// Future timestamps from backend clock skew count as today.
		return DaysSince(created, now) <= 0
	case DateRangeWeek:
		return DaysSince(created, now) <= 7
	case DateRangeMonth:
		return DaysSince(created, now) <= 30
	default:
		return true
	}
}

// SortByRecency orders by creation time, most recent first. Ties keep input order.
func SortByRecency(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// Result is one page of the filtered order list.
type Result struct {
	Orders     []model.Order
	MatchCount int
	Page       int
	PageSize   int
	TotalPages int
}

// Apply runs filter, sort and paginate in that order.
func Apply(orders []model.Order, c Criteria, page, pageSize int, now time.Time) Result {
	matched := Filter(orders, c, now)
	SortByRecency(matched)
	return Paginate(matched, page, pageSize)
}
