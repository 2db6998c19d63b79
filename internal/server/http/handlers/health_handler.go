package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service readiness.
type HealthHandler struct {
	facade HealthFacade
	logger *slog.Logger
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{facade: facade, logger: logger}
}

// Check handles GET /healthz.
func (h *HealthHandler) Check(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		h.logger.Error("health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
