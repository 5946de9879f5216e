// Command migrate applies or inspects database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/app"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	migrator := postgres.NewMigrator(cfg.Database.DSN, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	switch command {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q; expected up, down or status\n", command)
		os.Exit(1)
	}

	if err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
