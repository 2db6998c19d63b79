package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/server/http/dto"
)

// NotificationHandler serves notification endpoints.
type NotificationHandler struct {
	facade NotificationFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/admin/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.facade.Notifications(c.Request.Context(), CurrentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []model.Notification{}
	}
	c.JSON(http.StatusOK, dto.NotificationListResponse{Notifications: items})
}

// UnreadCount handles GET /api/admin/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.facade.UnreadCount(c.Request.Context(), CurrentSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count.Count, UpdatedAt: count.UpdatedAt})
}

// MarkRead handles PUT /api/admin/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.facade.MarkNotificationRead(c.Request.Context(), CurrentSession(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
