package test

import (
	"context"
	"strings"

	"github.com/polkiloo/storeadmin/internal/domain/model"
	pkgAuth "github.com/polkiloo/storeadmin/internal/pkg/auth"
)

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns "token:" followed by the session id unless overridden.
func (s StrategyStub) IssueToken(sessionID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(sessionID)
	}
	return "token:" + sessionID, nil
}

// ParseToken strips the "token:" prefix unless overridden.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if id, ok := strings.CutPrefix(token, "token:"); ok && id != "" {
		return id, nil
	}
	return "", pkgAuth.ErrInvalidToken
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// SessionResolverStub implements the middleware session lookup contract.
type SessionResolverStub struct {
	Session   *model.Session
	Err       error
	SessionFn func(context.Context, string) (*model.Session, error)
}

// Session either delegates to override or returns the predefined result.
func (s SessionResolverStub) Session(ctx context.Context, token string) (*model.Session, error) {
	if s.SessionFn != nil {
		return s.SessionFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Session != nil {
		return s.Session, nil
	}
	return &model.Session{ID: "session", BackendToken: "backend"}, nil
}

var _ pkgAuth.Strategy = StrategyStub{}
