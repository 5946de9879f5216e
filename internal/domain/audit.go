package domain

import "time"

// AuditEntity is the kind of record an audit entry refers to.
type AuditEntity string

const (
	AuditEntityUser AuditEntity = "user"
)

// AuditAction is the kind of change that was made.
type AuditAction string

const (
	AuditActionRoleChange AuditAction = "role_change"
	AuditActionBan        AuditAction = "ban"
	AuditActionUnban      AuditAction = "unban"
)

// AuditRecord logs an administrative change. ActorID is the admin who made it.
type AuditRecord struct {
	ID         string
	ActorID    string
	EntityType AuditEntity
	EntityID   string
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
