package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storeadmin/internal/adapter/backend"
	"github.com/polkiloo/storeadmin/internal/config"
	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
	"github.com/polkiloo/storeadmin/internal/domain/repository"
	pkgAuth "github.com/polkiloo/storeadmin/internal/pkg/auth"
)

// AuthUseCase handles operator sessions. Credentials are checked by the
// backend; the service stores the resulting bearer token server side and
// hands the client an opaque session token instead.
type AuthUseCase struct {
	backend  backend.Client
	sessions repository.SessionRepository
	tokens   pkgAuth.Strategy
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(client backend.Client, sessions repository.SessionRepository, strategy pkgAuth.Strategy, cfg *config.Config, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{
		backend:  client,
		sessions: sessions,
		tokens:   strategy,
		ttl:      cfg.SessionTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Login authenticates against the backend and opens a new session.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.Session, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	result, err := u.backend.Login(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	now := u.now()
	session := &model.Session{
		ID:           uuid.NewString(),
		Operator:     result.Operator,
		BackendToken: result.Token,
		CreatedAt:    now,
		ExpiresAt:    now.Add(u.ttl),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, "", fmt.Errorf("store session: %w", err)
	}

	token, err := u.tokens.IssueToken(session.ID)
	if err != nil {
		if delErr := u.sessions.Delete(ctx, session.ID); delErr != nil {
			u.logger.Error("failed to discard session after token error",
				slog.String("session_id", session.ID),
				slog.Any("error", delErr),
			)
		}
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	u.logger.Info("operator logged in",
		slog.String("session_id", session.ID),
		slog.String("operator", session.Operator.Email),
	)
	return session, token, nil
}

// Logout closes the session. Closing an unknown session is not an error.
func (u *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := u.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return err
	}
	return nil
}

// Session resolves a client token to a live session.
func (u *AuthUseCase) Session(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, domainErrors.ErrSessionExpired
	}
	sessionID, err := u.tokens.ParseToken(token)
	if err != nil {
		return nil, domainErrors.ErrSessionExpired
	}

	session, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) || errors.Is(err, domainErrors.ErrSessionExpired) {
			return nil, domainErrors.ErrSessionExpired
		}
		return nil, err
	}
	if session.Expired(u.now()) {
		return nil, domainErrors.ErrSessionExpired
	}
	return session, nil
}

// ActiveSessions lists sessions that have not expired yet.
func (u *AuthUseCase) ActiveSessions(ctx context.Context) ([]model.Session, error) {
	return u.sessions.ListActive(ctx, u.now())
}

// PurgeExpired removes expired sessions and returns how many were deleted.
func (u *AuthUseCase) PurgeExpired(ctx context.Context) (int64, error) {
	return u.sessions.DeleteExpired(ctx, u.now())
}
