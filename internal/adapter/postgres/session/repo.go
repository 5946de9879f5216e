// Package session implements auth session persistence using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, expires_at, ip_address, user_agent, created_at, updated_at`

const createSQL = `
INSERT INTO sessions (id, user_id, expires_at, ip_address, user_agent, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1`

const deleteSQL = `DELETE FROM sessions WHERE id = $1`

const deleteByUserSQL = `DELETE FROM sessions WHERE user_id = $1`

const deleteExpiredSQL = `DELETE FROM sessions WHERE expires_at <= now()`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a new session.
func (r *Repo) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	created, err := scanSession(querier.QueryRow(ctx, createSQL,
		s.ID, s.UserID, s.ExpiresAt, s.IPAddress, s.UserAgent, createdAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "session", s.ID)
	}
	return created, nil
}

// GetByID returns a session by id. Expired sessions are returned as-is;
// callers decide whether they are still valid.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}
	return s, nil
}

// Delete removes a single session. Idempotent.
func (r *Repo) Delete(ctx context.Context, id string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteSQL, id); err != nil {
		return postgres.MapError(err, "session", id)
	}
	return nil
}

// DeleteByUser removes every session of the given user and returns how many were removed.
func (r *Repo) DeleteByUser(ctx context.Context, userID string) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByUserSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "session", userID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteExpired removes all expired sessions.
// May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.ExpiresAt, &s.IPAddress, &s.UserAgent, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
