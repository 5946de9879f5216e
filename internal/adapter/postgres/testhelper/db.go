// Package testhelper provides a migrated PostgreSQL database for
// repository and end-to-end tests, plus row seeding helpers.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres"
)

// externalDSNEnv points tests at an existing database instead of a
// container. The database must be disposable: migrations are applied to it.
const externalDSNEnv = "TEST_DATABASE_DSN"

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB returns a pool on a migrated database shared by the whole
// test binary. The pool is closed via t.Cleanup. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: skipping database test in -short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = provision()
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: create pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// DSN returns the shared DSN. SetupTestDB must be called first.
func DSN(t *testing.T) string {
	t.Helper()
	if sharedDSN == "" {
		t.Fatal("testhelper: DSN called before SetupTestDB")
	}
	return sharedDSN
}

func provision() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(externalDSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := postgres.NewMigrator(dsn, quiet).Up(ctx); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}

func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "journal",
				"POSTGRES_PASSWORD": "journal",
				"POSTGRES_DB":       "journal_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("postgres host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("postgres port: %w", err)
	}
	endpoint := net.JoinHostPort(host, port.Port())
	return fmt.Sprintf("postgres://journal:journal@%s/journal_test?sslmode=disable", endpoint), nil
}
