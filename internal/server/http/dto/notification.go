package dto

import (
	"time"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// NotificationListResponse lists the operator's notifications.
type NotificationListResponse struct {
	Notifications []model.Notification `json:"notifications"`
}

// UnreadCountResponse carries the unread notification count.
type UnreadCountResponse struct {
	Count     int       `json:"count"`
	UpdatedAt time.Time `json:"updated_at"`
}
