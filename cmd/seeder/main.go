// Command seeder creates a demo user and loads the bundled sample journal
// entries for them. It is intended to be run against a development database.
//
// Flags:
//
//	--email          demo user email (overrides SEED_EMAIL)
//	--password       demo user password (overrides SEED_PASSWORD)
//	--name           demo user display name (overrides SEED_NAME)
//	--dry-run        parse the samples without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moodjournal-backend/internal/app"
	"github.com/heartmarshall/moodjournal-backend/internal/app/seeder"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
)

func main() {
	emailFlag := flag.String("email", "", "demo user email")
	passwordFlag := flag.String("password", "", "demo user password")
	nameFlag := flag.String("name", "", "demo user display name")
	dryRunFlag := flag.Bool("dry-run", false, "parse samples without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *emailFlag != "" {
		seederCfg.Email = *emailFlag
	}
	if *passwordFlag != "" {
		seederCfg.Password = *passwordFlag
	}
	if *nameFlag != "" {
		seederCfg.Name = *nameFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	samples, err := seeder.BundledSamples()
	if err != nil {
		logger.Error("load samples", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svcs := app.NewServices(appCfg, pool, logger, nil)

	result, err := seeder.NewPipeline(logger, svcs.Auth, svcs.Entries, *seederCfg, samples).Run(ctx)
	if err != nil {
		logger.Error("seeder failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeder finished",
		slog.String("email", seederCfg.Email),
		slog.Int("parsed", result.Parsed),
		slog.Int("inserted", result.Inserted),
		slog.Bool("skipped", result.Skipped),
		slog.Duration("duration", result.Duration),
	)
}
