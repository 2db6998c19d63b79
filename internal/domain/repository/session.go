package repository

import (
	"context"
	"time"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// SessionRepository persists operator sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context, now time.Time) ([]model.Session, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
