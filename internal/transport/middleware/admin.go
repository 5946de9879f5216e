package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// AdminOnly rejects requests whose session does not carry the admin role.
// It must run after SessionGate.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if err := RequireAdmin(r.Context()); err != nil {
			writeMessage(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
