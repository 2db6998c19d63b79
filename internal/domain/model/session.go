package model

import "time"

// Operator is an admin console user authenticated by the backend.
type Operator struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session binds an operator to the backend bearer token issued at login.
type Session struct {
	ID           string
	Operator     Operator
	BackendToken string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the session is no longer usable at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
