package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// Allowed origins are echoed back rather than answered with "*", so
// credentialed requests keep working with a wildcard configuration.
// Preflight requests are answered with 200 and never reach next.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return isAllowedOrigin(origin, origins)
		},
		AllowedMethods:   splitList(cfg.AllowedMethods),
		AllowedHeaders:   splitList(cfg.AllowedHeaders),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func isAllowedOrigin(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
