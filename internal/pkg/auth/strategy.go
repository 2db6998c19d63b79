package auth

import "time"

// Strategy issues and verifies the opaque tokens handed to admin console
// clients. A token identifies a server side session.
type Strategy interface {
	IssueToken(sessionID string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
