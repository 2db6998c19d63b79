package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrSessionExpired     = errors.New("session expired")
)
