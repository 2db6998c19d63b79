package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
)

const sessionColumns = `id, operator_id, operator_name, operator_email, operator_role, backend_token, created_at, expires_at`

type sessionRepository struct {
	storage *Storage
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	sealed, err := r.storage.sealer.Seal(session.BackendToken)
	if err != nil {
		return fmt.Errorf("seal backend token: %w", err)
	}

	const query = `INSERT INTO admin_sessions (` + sessionColumns + `)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.storage.pool.Exec(ctx, query,
		session.ID,
		session.Operator.ID,
		session.Operator.Name,
		session.Operator.Email,
		session.Operator.Role,
		sealed,
		session.CreatedAt,
		session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	const query = `SELECT ` + sessionColumns + ` FROM admin_sessions WHERE id=$1`
	session, err := r.scan(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, domainErrors.ErrNotFound
		}
		var unsealErr *unsealError
		if errors.As(err, &unsealErr) {
			return nil, fmt.Errorf("%w: %v", domainErrors.ErrSessionExpired, err)
		}
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM admin_sessions WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// ListActive skips sessions whose token can no longer be unsealed, which
// happens after the session secret is rotated.
func (r *sessionRepository) ListActive(ctx context.Context, now time.Time) ([]model.Session, error) {
	const query = `SELECT ` + sessionColumns + ` FROM admin_sessions
                   WHERE expires_at > $1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Session
	for rows.Next() {
		session, err := r.scan(rows)
		if err != nil {
			var unsealErr *unsealError
			if !errors.As(err, &unsealErr) {
				return nil, err
			}
			r.storage.logger.Warn("skip unreadable session",
				slog.String("session_id", unsealErr.sessionID),
				slog.String("error", unsealErr.err.Error()),
			)
			continue
		}
		result = append(result, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var removed int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM admin_sessions WHERE expires_at <= $1`, now)
		if err != nil {
			return err
		}
		removed = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return removed, nil
}

func (r *sessionRepository) scan(row rowScanner) (*model.Session, error) {
	var (
		s      model.Session
		sealed string
	)
	err := row.Scan(
		&s.ID,
		&s.Operator.ID,
		&s.Operator.Name,
		&s.Operator.Email,
		&s.Operator.Role,
		&sealed,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	token, err := r.storage.sealer.Open(sealed)
	if err != nil {
		return nil, &unsealError{sessionID: s.ID, err: err}
	}
	s.BackendToken = token
	return &s, nil
}

type unsealError struct {
	sessionID string
	err       error
}

func (e *unsealError) Error() string {
	return fmt.Sprintf("session %s: %v", e.sessionID, e.err)
}

func (e *unsealError) Unwrap() error {
	return e.err
}
