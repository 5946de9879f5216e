package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// GetSession resolves a session token to the signed-in user and session.
// Returns ErrUnauthorized if the token is missing or invalid, the session no
// longer exists or has expired, or the user is banned. Storage failures are
// returned wrapped.
func (s *Service) GetSession(ctx context.Context, token string) (*domain.AuthSession, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	claims, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.GetSession get session: %w", err)
	}

	now := s.now()
	if session.UserID != claims.UserID || session.IsExpired(now) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.GetSession get user: %w", err)
	}

	if user.IsBanned(now) {
		return nil, domain.ErrUnauthorized
	}

	return &domain.AuthSession{User: *user, Session: *session}, nil
}

// SignOut deletes the session the token was issued for.
// Idempotent: an invalid token or an already-deleted session is not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		return nil
	}

	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("auth.SignOut: %w", err)
	}

	s.log.InfoContext(ctx, "user signed out",
		slog.String("user_id", claims.UserID),
		slog.String("session_id", claims.SessionID))
	return nil
}

// CleanupExpiredSessions removes all expired sessions from the database.
// Returns the number of sessions deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredSessions(ctx context.Context) (int, error) {
	count, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "session cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredSessions: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired sessions", slog.Int("count", count))
	}

	return count, nil
}
