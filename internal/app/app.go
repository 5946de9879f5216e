package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/adapter/provider/mood"
	redisadapter "github.com/heartmarshall/moodjournal-backend/internal/adapter/redis"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/middleware"
	"github.com/heartmarshall/moodjournal-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, serves HTTP until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("mood_provider", cfg.Mood.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.NewMigrator(cfg.Database.DSN, logger).Up(ctx); err != nil {
			return fmt.Errorf("migrate on start: %w", err)
		}
	}

	deps := Deps{
		Config:  cfg,
		Pool:    pool,
		Logger:  logger,
		Mood:    mood.New(cfg.Mood, logger),
		Version: Version,
	}

	if cfg.RateLimit.RedisURL != "" {
		client, err := redisadapter.NewClient(ctx, cfg.RateLimit.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()

		deps.Limiter = middleware.NewRedisLimiter(client, "moodjournal:ratelimit")
		deps.Checks = append(deps.Checks, rest.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	} else {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer rl.Stop()
		deps.Limiter = rl
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewHandler(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
