// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `id, name, email, email_verified, image, role, banned, ban_reason, ban_expires, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, name, email, email_verified, image, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

const countSQL = `SELECT count(*) FROM users`

const updateRoleSQL = `
UPDATE users
SET role = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const setBanSQL = `
UPDATE users
SET banned = true, ban_reason = $2, ban_expires = $3, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const clearBanSQL = `
UPDATE users
SET banned = false, ban_reason = NULL, ban_expires = NULL, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const promoteByEmailSQL = `
UPDATE users
SET role = 'admin', updated_at = now()
WHERE email = $1 AND role <> 'admin'`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// List returns users ordered by newest first.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(userColumns).
		From("users").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countSQL).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	createdAt, updatedAt := u.CreatedAt, u.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	created, err := scanUser(querier.QueryRow(ctx, createSQL,
		u.ID, u.Name, u.Email, u.EmailVerified, u.Image, string(role), createdAt, updatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// UpdateRole sets the role of a user.
func (r *Repo) UpdateRole(ctx context.Context, id string, role domain.UserRole) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, updateRoleSQL, id, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// SetBan marks a user as banned. A nil expires bans permanently.
func (r *Repo) SetBan(ctx context.Context, id string, reason *string, expires *time.Time) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, setBanSQL, id, reason, expires))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// ClearBan lifts a ban.
func (r *Repo) ClearBan(ctx context.Context, id string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, clearBanSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// PromoteByEmail grants the admin role to the user with the given email.
// Returns domain.ErrNotFound if no such user exists or they are already admin.
func (r *Repo) PromoteByEmail(ctx context.Context, email string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, promoteByEmailSQL, email)
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.EmailVerified, &u.Image, &role,
		&u.Banned, &u.BanReason, &u.BanExpires, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
