// Package user implements administrative user management.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	UpdateRole(ctx context.Context, id string, role domain.UserRole) (*domain.User, error)
	SetBan(ctx context.Context, id string, reason *string, expires *time.Time) (*domain.User, error)
	ClearBan(ctx context.Context, id string) (*domain.User, error)
}

// sessionRepo defines the session repository interface needed by user service.
type sessionRepo interface {
	DeleteByUser(ctx context.Context, userID string) (int, error)
}

// auditRepo defines the audit repository interface needed by user service.
type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.AuditEntity, entityID string, limit int) ([]domain.AuditRecord, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin user operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	audit    auditRepo
	tx       txManager
	now      func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		sessions: sessions,
		audit:    audit,
		tx:       tx,
		now:      time.Now,
	}
}
