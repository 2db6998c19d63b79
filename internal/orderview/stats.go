package orderview

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// Stats summarizes an order list.
type Stats struct {
	Total        int
	ByStatus     map[model.OrderStatus]int
	TotalRevenue decimal.Decimal
}

// Count tallies orders per status and sums revenue over non-cancelled orders.
// Every known status has a bucket, so the buckets partition Total as long as
// every order carries a known status.
func Count(orders []model.Order) Stats {
	stats := Stats{
		ByStatus:     make(map[model.OrderStatus]int, len(model.OrderStatuses)),
		TotalRevenue: decimal.Zero,
	}
	for _, s := range model.OrderStatuses {
		stats.ByStatus[s] = 0
	}

	for _, o := range orders {
		stats.Total++
		if _, known := stats.ByStatus[o.Status]; known {
			stats.ByStatus[o.Status]++
		}
		if o.Status != model.OrderStatusCancelled {
			stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		}
	}
	return stats
}
