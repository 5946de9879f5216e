package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres/account"
	auditrepo "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres/audit"
	journalrepo "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres/journal"
	sessionrepo "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres/session"
	userrepo "github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/moodjournal-backend/internal/adapter/provider/mood"
	authpkg "github.com/heartmarshall/moodjournal-backend/internal/auth"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
	authsvc "github.com/heartmarshall/moodjournal-backend/internal/service/auth"
	journalsvc "github.com/heartmarshall/moodjournal-backend/internal/service/journal"
	usersvc "github.com/heartmarshall/moodjournal-backend/internal/service/user"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/middleware"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/rest"
)

// Deps are the long-lived resources the HTTP handler is built from.
type Deps struct {
	Config  *config.Config
	Pool    *pgxpool.Pool
	Logger  *slog.Logger
	Mood    mood.Provider
	Limiter middleware.Limiter // nil disables auth throttling
	Checks  []rest.Check       // extra readiness checks; the database is always probed
	Version string
}

// Services exposes the services built by NewServices for commands that
// run without an HTTP server.
type Services struct {
	Auth    *authsvc.Service
	Journal *journalsvc.Service
	User    *usersvc.Service
	Entries *journalrepo.Repo
}

// NewServices builds repositories and services over pool.
func NewServices(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, analyzer mood.Provider) *Services {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	accounts := accountrepo.New(pool)
	sessions := sessionrepo.New(pool)
	entries := journalrepo.New(pool)
	audits := auditrepo.New(pool)

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.Secret, cfg.Auth.Issuer)

	return &Services{
		Auth:    authsvc.NewService(logger, users, accounts, sessions, txm, jwtMgr, cfg.Auth),
		Journal: journalsvc.NewService(logger, entries, analyzer, cfg.Mood.Timeout),
		User:    usersvc.NewService(logger, users, sessions, audits, txm),
		Entries: entries,
	}
}

// NewHandler wires services and handlers into the routed HTTP handler.
func NewHandler(d Deps) http.Handler {
	svcs := NewServices(d.Config, d.Pool, d.Logger, d.Mood)

	checks := append([]rest.Check{{Name: "database", Ping: d.Pool.Ping}}, d.Checks...)

	var authLimit middleware.Middleware
	if d.Limiter != nil && d.Config.RateLimit.AuthPerMinute > 0 {
		authLimit = middleware.RateLimit(d.Limiter, d.Config.RateLimit.AuthPerMinute, d.Logger)
	}

	return NewRouter(d.Logger, svcs.Auth, Handlers{
		Health:  rest.NewHealthHandler(d.Version, checks...),
		Auth:    rest.NewAuthHandler(svcs.Auth, d.Config.Auth, d.Logger),
		Entries: rest.NewEntryHandler(svcs.Journal, d.Logger),
		Admin:   rest.NewAdminHandler(svcs.User, d.Logger),
	}, RouterConfig{
		CORS:       d.Config.CORS,
		CookieName: d.Config.Auth.CookieName,
		AuthLimit:  authLimit,
	})
}
