package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

type accessLogKey struct{}

// accessLog collects fields discovered by inner middleware for the access
// log line written by Logger once the request completes.
type accessLog struct {
	userID string
}

// annotateUser records the authenticated user on the enclosing access log
// line, if any.
func annotateUser(ctx context.Context, userID string) {
	if al, ok := ctx.Value(accessLogKey{}).(*accessLog); ok {
		al.userID = userID
	}
}

// Logger writes one access log line per request. 5xx responses log at
// ERROR and 4xx at WARN.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			al := &accessLog{}
			ctx := context.WithValue(r.Context(), accessLogKey{}, al)

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}

			userID := al.userID
			if userID == "" {
				userID, _ = ctxutil.UserIDFromCtx(r.Context())
			}
			if userID != "" {
				attrs = append(attrs, slog.String("user_id", userID))
			}

			logger.LogAttrs(r.Context(), statusLevel(sw.status), "http.request", attrs...)
		})
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// statusWriter captures the response status code and body size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
