// Package middleware holds the HTTP middleware shared by every route:
// request IDs, access logging, panic recovery, CORS, rate limiting and the
// session gate in front of /api.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler
