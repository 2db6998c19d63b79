package model

import "time"

// Notification is an admin console notice raised by the backend.
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
