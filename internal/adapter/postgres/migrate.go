package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/moodjournal-backend/migrations"
)

// Migrator applies the embedded goose migrations.
type Migrator struct {
	dsn string
	log *slog.Logger
}

// NewMigrator creates a Migrator for the given DSN.
func NewMigrator(dsn string, logger *slog.Logger) *Migrator {
	return &Migrator{dsn: dsn, log: logger.With("component", "migrator")}
}

// withProvider opens a database/sql handle (goose requires *sql.DB)
// and runs fn with a goose provider bound to it.
func (m *Migrator) withProvider(ctx context.Context, fn func(p *goose.Provider) error) error {
	db, err := sql.Open("pgx", m.dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	return fn(provider)
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	return m.withProvider(ctx, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			m.log.InfoContext(ctx, "migration applied",
				slog.String("source", r.Source.Path),
				slog.Duration("duration", r.Duration),
			)
		}
		return nil
	})
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.withProvider(ctx, func(p *goose.Provider) error {
		r, err := p.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		if r != nil {
			m.log.InfoContext(ctx, "migration rolled back", slog.String("source", r.Source.Path))
		}
		return nil
	})
}

// Status logs the applied/pending state of every migration.
func (m *Migrator) Status(ctx context.Context) error {
	return m.withProvider(ctx, func(p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			m.log.InfoContext(ctx, "migration status",
				slog.Int64("version", s.Source.Version),
				slog.String("source", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}
		return nil
	})
}
