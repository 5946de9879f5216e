package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the "user" role. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates a user with the "admin" role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.NewString(),
		Name:      "Test User " + suffix,
		Email:     "testuser-" + suffix + "@example.com",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedSession creates a session for userID that expires after ttl.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID string, ttl time.Duration) domain.Session {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (id, user_id, expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UserID, s.ExpiresAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return s
}

// SeedEntry creates a journal entry for userID with the given title and tags.
// createdAt lets tests control list ordering.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID, title string, tags []string, createdAt time.Time) domain.JournalEntry {
	t.Helper()
	ctx := context.Background()

	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry marshal tags: %v", err)
	}

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	e := domain.JournalEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   "content of " + title,
		Tags:      tags,
		Metadata:  map[string]any{},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO journal_entries (id, user_id, title, content, tags, metadata, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, '{}'::jsonb, $6, $7)`,
		e.ID, e.UserID, e.Title, e.Content, tagsJSON, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return e
}
