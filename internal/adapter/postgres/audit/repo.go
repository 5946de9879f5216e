// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const auditColumns = `id, actor_id, entity_type, entity_id, action, changes, created_at`

const createSQL = `
INSERT INTO audit_log (id, actor_id, entity_type, entity_id, action, changes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + auditColumns

const getByEntitySQL = `
SELECT ` + auditColumns + `
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC, id DESC
LIMIT $3`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	var actorID *string
	if record.ActorID != "" {
		actorID = &record.ActorID
	}

	rec, err := scanRecord(querier.QueryRow(ctx, createSQL,
		record.ID, actorID, string(record.EntityType), record.EntityID,
		string(record.Action), string(changesJSON), createdAt,
	))
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}
	return rec, nil
}

// Log creates an audit record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEntity returns the change history for a specific entity, ordered by
// created_at DESC, limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.AuditEntity, entityID string, limit int) ([]domain.AuditRecord, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByEntitySQL, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec         domain.AuditRecord
		actorID     *string
		entityType  string
		action      string
		changesJSON []byte
	)
	if err := row.Scan(&rec.ID, &actorID, &entityType, &rec.EntityID, &action, &changesJSON, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}

	if actorID != nil {
		rec.ActorID = *actorID
	}
	rec.EntityType = domain.AuditEntity(entityType)
	rec.Action = domain.AuditAction(action)

	changes, err := postgres.DecodeObject(changesJSON)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
	}
	rec.Changes = changes

	return rec, nil
}
