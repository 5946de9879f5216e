// Package account implements credential-account persistence using PostgreSQL.
package account

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const accountColumns = `id, user_id, provider_id, password_hash, created_at, updated_at`

const createSQL = `
INSERT INTO accounts (id, user_id, provider_id, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + accountColumns

const getByUserAndProviderSQL = `
SELECT ` + accountColumns + `
FROM accounts
WHERE user_id = $1 AND provider_id = $2`

// Create inserts a new account.
// A second account for the same (user, provider) results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	created, err := scanAccount(querier.QueryRow(ctx, createSQL,
		a.ID, a.UserID, string(a.ProviderID), a.PasswordHash, createdAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "account", a.ID)
	}
	return created, nil
}

// GetByUserAndProvider returns the account linking userID to the given provider.
func (r *Repo) GetByUserAndProvider(ctx context.Context, userID string, provider domain.AccountProvider) (*domain.Account, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAccount(querier.QueryRow(ctx, getByUserAndProviderSQL, userID, string(provider)))
	if err != nil {
		return nil, postgres.MapError(err, "account", userID+"/"+string(provider))
	}
	return a, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		a        domain.Account
		provider string
	)
	if err := row.Scan(&a.ID, &a.UserID, &provider, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.ProviderID = domain.AccountProvider(provider)
	return &a, nil
}
