package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/polkiloo/storeadmin/internal/orderview"
	"github.com/polkiloo/storeadmin/internal/server/http/dto"
	"github.com/polkiloo/storeadmin/internal/usecase"
)

// OrderHandler manages order view endpoints.
type OrderHandler struct {
	facade   OrderFacade
	validate *validatorv10.Validate
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, v *validatorv10.Validate) *OrderHandler {
	return &OrderHandler{facade: facade, validate: v}
}

// List handles GET /api/admin/orders.
func (h *OrderHandler) List(c *gin.Context) {
	var query dto.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid query"})
		return
	}

	result, err := h.facade.Orders(c.Request.Context(), CurrentSession(c), usecase.OrderQuery{
		Criteria: orderview.Criteria{
			Search:    query.Search,
			Status:    query.Status,
			Payment:   query.Payment,
			DateRange: orderview.DateRange(query.Range),
		},
		Page:    query.Page,
		Refresh: query.Refresh,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{
		Orders:     result.Orders,
		MatchCount: result.MatchCount,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	})
}

// Stats handles GET /api/admin/orders/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.facade.OrderStats(c.Request.Context(), CurrentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OrderStatsResponse{
		Total:        stats.Total,
		ByStatus:     stats.ByStatus,
		TotalRevenue: stats.TotalRevenue,
	})
}

// Get handles GET /api/admin/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	detail, err := h.facade.Order(c.Request.Context(), CurrentSession(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

// UpdateStatus handles PUT /api/admin/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := BindAndValidate(c, &req, h.validate); err != nil {
		return
	}

	detail, err := h.facade.UpdateOrderStatus(c.Request.Context(), CurrentSession(c), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderDetailResponse(detail))
}

func toOrderDetailResponse(detail usecase.OrderDetail) dto.OrderDetailResponse {
	stages := make([]dto.TimelineStage, 0, len(detail.Timeline.Stages))
	for _, s := range detail.Timeline.Stages {
		stages = append(stages, dto.TimelineStage{Status: s.Status, Reached: s.Reached})
	}
	return dto.OrderDetailResponse{
		Order:     detail.Order,
		Timeline:  stages,
		Cancelled: detail.Timeline.Cancelled,
	}
}
