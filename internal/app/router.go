package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/middleware"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/rest"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health  *rest.HealthHandler
	Auth    *rest.AuthHandler
	Entries *rest.EntryHandler
	Admin   *rest.AdminHandler
}

// RouterConfig carries the settings the router needs beyond handlers.
type RouterConfig struct {
	CORS       config.CORSConfig
	CookieName string
	// AuthLimit throttles /api/auth. Nil disables throttling.
	AuthLimit middleware.Middleware
}

// NewRouter builds the HTTP routing tree. The session gate wraps every
// route so unknown /api paths are rejected before they can 404.
func NewRouter(logger *slog.Logger, sessions middleware.SessionResolver, h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.SessionGate(sessions, cfg.CookieName, logger),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if cfg.AuthLimit != nil {
				r.Use(cfg.AuthLimit)
			}
			r.Post("/sign-up/email", h.Auth.SignUp)
			r.Post("/sign-in/email", h.Auth.SignIn)
			r.Post("/sign-out", h.Auth.SignOut)
			r.Get("/get-session", h.Auth.GetSession)
		})

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", h.Entries.List)
			r.Post("/", h.Entries.Create)
			r.Get("/{id}", h.Entries.Get)
			r.Post("/{id}", h.Entries.Update)
			r.Patch("/{id}", h.Entries.Update)
			r.Delete("/{id}", h.Entries.Delete)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminOnly)
			r.Get("/users", h.Admin.ListUsers)
			r.Post("/users/{id}/role", h.Admin.SetRole)
			r.Post("/users/{id}/ban", h.Admin.Ban)
			r.Post("/users/{id}/unban", h.Admin.Unban)
			r.Get("/users/{id}/audit", h.Admin.AuditLog)
		})
	})

	return r
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"message":"` + message + `"}` + "\n"))
}
