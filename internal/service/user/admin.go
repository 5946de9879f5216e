package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

// adminID returns the caller's id if the caller is an admin.
func adminID(ctx context.Context) (string, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return "", domain.ErrForbidden
	}
	return callerID, nil
}

func (s *Service) record(callerID, targetID string, action domain.AuditAction, changes map[string]any) domain.AuditRecord {
	return domain.AuditRecord{
		ID:         uuid.NewString(),
		ActorID:    callerID,
		EntityType: domain.AuditEntityUser,
		EntityID:   targetID,
		Action:     action,
		Changes:    changes,
		CreatedAt:  s.now().UTC().Truncate(time.Microsecond),
	}
}

// ListUsers returns a paginated list of all users and the total count (admin only).
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) ([]domain.User, int, error) {
	if _, err := adminID(ctx); err != nil {
		return nil, 0, err
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}
	if input.Limit == 0 {
		input.Limit = defaultListLimit
	}

	users, err := s.users.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("user.CountUsers: %w", err)
	}

	return users, total, nil
}

// SetUserRole changes the role of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID string, role domain.UserRole) (*domain.User, error) {
	callerID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be 'user' or 'admin'")
	}

	// Prevent admin from demoting themselves.
	if callerID == targetUserID && role == domain.UserRoleUser {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, targetUserID)
		if err != nil {
			return err
		}

		updated, err = s.users.UpdateRole(txCtx, targetUserID, role)
		if err != nil {
			return err
		}

		return s.audit.Log(txCtx, s.record(callerID, targetUserID, domain.AuditActionRoleChange, map[string]any{
			"old_role": current.Role.String(),
			"new_role": role.String(),
		}))
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("admin_id", callerID),
		slog.String("target_user_id", targetUserID),
		slog.String("new_role", role.String()),
	)

	return updated, nil
}

// BanUser bans a user and revokes all of their sessions (admin only).
func (s *Service) BanUser(ctx context.Context, input BanUserInput) (*domain.User, error) {
	callerID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	if input.Reason != nil {
		reason := strings.TrimSpace(*input.Reason)
		if reason == "" {
			input.Reason = nil
		} else {
			input.Reason = &reason
		}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if callerID == input.UserID {
		return nil, domain.NewValidationError("userId", "cannot ban yourself")
	}

	var expires *time.Time
	if input.ExpiresIn != nil {
		at := s.now().UTC().Add(*input.ExpiresIn).Truncate(time.Microsecond)
		expires = &at
	}

	var (
		banned  *domain.User
		revoked int
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		banned, err = s.users.SetBan(txCtx, input.UserID, input.Reason, expires)
		if err != nil {
			return err
		}

		revoked, err = s.sessions.DeleteByUser(txCtx, input.UserID)
		if err != nil {
			return err
		}

		changes := map[string]any{"sessions_revoked": revoked}
		if input.Reason != nil {
			changes["reason"] = *input.Reason
		}
		if expires != nil {
			changes["expires"] = expires.Format(time.RFC3339)
		}
		return s.audit.Log(txCtx, s.record(callerID, input.UserID, domain.AuditActionBan, changes))
	})
	if err != nil {
		return nil, fmt.Errorf("user.BanUser: %w", err)
	}

	s.log.InfoContext(ctx, "user banned",
		slog.String("admin_id", callerID),
		slog.String("target_user_id", input.UserID),
		slog.Int("sessions_revoked", revoked),
	)

	return banned, nil
}

// UnbanUser lifts a ban (admin only).
func (s *Service) UnbanUser(ctx context.Context, targetUserID string) (*domain.User, error) {
	callerID, err := adminID(ctx)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.users.ClearBan(txCtx, targetUserID)
		if err != nil {
			return err
		}
		return s.audit.Log(txCtx, s.record(callerID, targetUserID, domain.AuditActionUnban, nil))
	})
	if err != nil {
		return nil, fmt.Errorf("user.UnbanUser: %w", err)
	}

	s.log.InfoContext(ctx, "user unbanned",
		slog.String("admin_id", callerID),
		slog.String("target_user_id", targetUserID),
	)

	return user, nil
}

// UserAuditLog returns the most recent admin actions taken on a user (admin only).
func (s *Service) UserAuditLog(ctx context.Context, targetUserID string, limit int) ([]domain.AuditRecord, error) {
	if _, err := adminID(ctx); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	records, err := s.audit.GetByEntity(ctx, domain.AuditEntityUser, targetUserID, limit)
	if err != nil {
		return nil, fmt.Errorf("user.UserAuditLog: %w", err)
	}

	return records, nil
}
