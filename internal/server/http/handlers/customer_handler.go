package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/server/http/dto"
)

// CustomerHandler serves the customer list.
type CustomerHandler struct {
	facade CustomerFacade
}

// NewCustomerHandler constructs CustomerHandler.
func NewCustomerHandler(facade CustomerFacade) *CustomerHandler {
	return &CustomerHandler{facade: facade}
}

// List handles GET /api/admin/customers.
func (h *CustomerHandler) List(c *gin.Context) {
	var query dto.CustomerListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid query"})
		return
	}

	customers, err := h.facade.Customers(c.Request.Context(), CurrentSession(c), query.Search, query.Sort)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CustomerListResponse{Customers: customers, Count: len(customers)})
}
