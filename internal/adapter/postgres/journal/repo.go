// Package journal implements the JournalEntry repository using PostgreSQL.
// Static statements are raw SQL; list and partial update are built with squirrel.
// Every statement is scoped by user_id.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new journal entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const entryColumns = `id, user_id, title, content, mood, is_public, tags, metadata, created_at, updated_at`

const insertSQL = `
INSERT INTO journal_entries (id, user_id, title, content, mood, is_public, tags, metadata, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const createSQL = insertSQL + `
RETURNING ` + entryColumns

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM journal_entries
WHERE id = $1 AND user_id = $2`

const deleteSQL = `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the entry with the given id owned by userID.
// An entry owned by someone else is reported as domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, userID, id string) (*domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(querier.QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", id)
	}
	return e, nil
}

// List returns the user's entries, newest first. Ties on created_at are broken by id.
func (r *Repo) List(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select(entryColumns).
		From("journal_entries").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC")

	if filter.Tag != nil {
		tagJSON, err := json.Marshal([]string{*filter.Tag})
		if err != nil {
			return nil, fmt.Errorf("marshal tag filter: %w", err)
		}
		query = query.Where("tags @> ?::jsonb", string(tagJSON))
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new entry and returns the stored row.
func (r *Repo) Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	args, err := insertArgs(e)
	if err != nil {
		return nil, err
	}

	created, err := scanEntry(querier.QueryRow(ctx, createSQL, args...))
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", e.ID)
	}
	return created, nil
}

// BulkCreate inserts entries using pgx.Batch. Returns the number of inserted rows.
func (r *Repo) BulkCreate(ctx context.Context, entries []domain.JournalEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range entries {
		args, err := insertArgs(&entries[i])
		if err != nil {
			return 0, err
		}
		batch.Queue(insertSQL, args...)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for i := range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(err, "journal_entry", entries[i].ID)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// Update applies a partial update to the entry owned by userID and bumps updated_at.
// An empty mood clears the stored mood.
func (r *Repo) Update(ctx context.Context, userID, id string, patch domain.EntryPatch) (*domain.JournalEntry, error) {
	if patch.IsEmpty() {
		return nil, domain.NewValidationError("body", "no fields to update")
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Update("journal_entries").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + entryColumns)

	if patch.Title != nil {
		query = query.Set("title", *patch.Title)
	}
	if patch.Content != nil {
		query = query.Set("content", *patch.Content)
	}
	if patch.Mood != nil {
		if *patch.Mood == "" {
			query = query.Set("mood", nil)
		} else {
			query = query.Set("mood", *patch.Mood)
		}
	}
	if patch.IsPublic != nil {
		query = query.Set("is_public", *patch.IsPublic)
	}
	if patch.Tags != nil {
		tagsJSON, err := marshalTags(*patch.Tags)
		if err != nil {
			return nil, err
		}
		query = query.Set("tags", squirrel.Expr("?::jsonb", tagsJSON))
	}
	if patch.Metadata != nil {
		metaJSON, err := marshalMetadata(*patch.Metadata)
		if err != nil {
			return nil, err
		}
		query = query.Set("metadata", squirrel.Expr("?::jsonb", metaJSON))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update entry query: %w", err)
	}

	updated, err := scanEntry(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "journal_entry", id)
	}
	return updated, nil
}

// Delete removes the entry owned by userID.
// Returns domain.ErrNotFound if nothing matched.
func (r *Repo) Delete(ctx context.Context, userID, id string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "journal_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("journal_entry %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// JSONB helpers
// ---------------------------------------------------------------------------

func insertArgs(e *domain.JournalEntry) ([]any, error) {
	tagsJSON, err := marshalTags(e.Tags)
	if err != nil {
		return nil, err
	}
	metaJSON, err := marshalMetadata(e.Metadata)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	createdAt, updatedAt := e.CreatedAt, e.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return []any{
		e.ID, e.UserID, e.Title, e.Content, e.Mood, e.IsPublic,
		tagsJSON, metaJSON, createdAt, updatedAt,
	}, nil
}

func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("marshal tags: %w", err)
	}
	return string(b), nil
}

func marshalMetadata(meta map[string]any) (string, error) {
	if meta == nil {
		meta = map[string]any{}
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	return string(b), nil
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var (
		e       domain.JournalEntry
		tagsRaw []byte
		metaRaw []byte
	)
	if err := row.Scan(
		&e.ID, &e.UserID, &e.Title, &e.Content, &e.Mood, &e.IsPublic,
		&tagsRaw, &metaRaw, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Tags = []string{}
	if len(tagsRaw) > 0 {
		if err := json.Unmarshal(tagsRaw, &e.Tags); err != nil {
			return nil, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	meta, err := postgres.DecodeObject(metaRaw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	e.Metadata = meta

	return &e, nil
}
