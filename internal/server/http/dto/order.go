package dto

import (
	"github.com/shopspring/decimal"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// OrderListQuery is the query string of the order list endpoint.
type OrderListQuery struct {
	Search  string `form:"search"`
	Status  string `form:"status"`
	Payment string `form:"payment"`
	Range   string `form:"range"`
	Page    int    `form:"page"`
	Refresh bool   `form:"refresh"`
}

// OrderListResponse is one page of the filtered order list.
type OrderListResponse struct {
	Orders     []model.Order `json:"orders"`
	MatchCount int           `json:"match_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// OrderStatsResponse carries the dashboard counters.
type OrderStatsResponse struct {
	Total        int                       `json:"total"`
	ByStatus     map[model.OrderStatus]int `json:"by_status"`
	TotalRevenue decimal.Decimal           `json:"total_revenue"`
}

// TimelineStage is one step of the status timeline.
type TimelineStage struct {
	Status  model.OrderStatus `json:"status"`
	Reached bool              `json:"reached"`
}

// OrderDetailResponse is an order with its status timeline.
type OrderDetailResponse struct {
	Order     model.Order     `json:"order"`
	Timeline  []TimelineStage `json:"timeline"`
	Cancelled bool            `json:"cancelled"`
}

// StatusUpdateRequest asks for an order status change.
type StatusUpdateRequest struct {
	Status model.OrderStatus `json:"status" validate:"required,orderstatus"`
}
