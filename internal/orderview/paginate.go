package orderview

import "github.com/polkiloo/storeadmin/internal/domain/model"

// DefaultPageSize applies when a non-positive page size is requested.
const DefaultPageSize = 10

// TotalPages returns ceil(count / size).
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate slices a 1-based page out of orders. Pages below 1 are treated as 1;
// pages past the end are empty.
func Paginate(orders []model.Order, page, size int) Result {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	res := Result{
		Orders:     []model.Order{},
		MatchCount: len(orders),
		Page:       page,
		PageSize:   size,
		TotalPages: TotalPages(len(orders), size),
	}
	start := (page - 1) * size
	if start >= len(orders) {
		return res
	}
	end := min(start+size, len(orders))
	res.Orders = orders[start:end]
	return res
}
