package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

// SessionResolver resolves a session token to the caller's identity.
// It returns domain.ErrUnauthorized for any token that does not map to a
// live session.
type SessionResolver interface {
	GetSession(ctx context.Context, token string) (*domain.AuthSession, error)
}

const (
	apiPrefix  = "/api"
	authPrefix = "/api/auth"
)

// SessionGate guards every path under /api except the /api/auth subtree.
// Requests without a resolvable session get 401 before reaching next.
// On success the user ID, role and session ID are stored in the context.
func SessionGate(resolver SessionResolver, cookieName string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsGuardedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := SessionToken(r, cookieName)
			if token == "" {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			as, err := resolver.GetSession(r.Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					writeMessage(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
				logger.ErrorContext(r.Context(), "session lookup failed",
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), as.User.ID)
			ctx = ctxutil.WithUserRole(ctx, as.User.Role.String())
			ctx = ctxutil.WithSessionID(ctx, as.Session.ID)
			annotateUser(ctx, as.User.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsGuardedPath reports whether a request path requires a session.
func IsGuardedPath(path string) bool {
	if !hasSegmentPrefix(path, apiPrefix) {
		return false
	}
	return !hasSegmentPrefix(path, authPrefix)
}

// hasSegmentPrefix matches prefix exactly or as a leading path segment,
// so "/apikeys" does not match "/api".
func hasSegmentPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}

// SessionToken extracts the session token from a Bearer Authorization
// header, falling back to the session cookie.
func SessionToken(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			if token = strings.TrimSpace(token); token != "" {
				return token
			}
		}
	}
	if cookieName == "" {
		return ""
	}
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
