// Command cleanup-sessions deletes expired sessions. It is intended to be
// invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/app"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs := app.NewServices(cfg, pool, logger, nil)

	deleted, err := svcs.Auth.CleanupExpiredSessions(ctx)
	if err != nil {
		logger.Error("session cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("session cleanup completed", slog.Int("deleted", deleted))
}
