package dto

import (
	"time"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// LoginRequest describes operator credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse describes the authenticated operator session.
type SessionResponse struct {
	Token     string         `json:"token,omitempty"`
	Operator  model.Operator `json:"user"`
	ExpiresAt time.Time      `json:"expires_at"`
}
