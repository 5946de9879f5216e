package seeder_test

import (
	"github.com/heartmarshall/moodjournal-backend/internal/adapter/postgres/journal"
	"github.com/heartmarshall/moodjournal-backend/internal/app/seeder"
	"github.com/heartmarshall/moodjournal-backend/internal/service/auth"
)

// Compile-time checks for the pipeline's dependencies.
var (
	_ seeder.EntryBulkRepo = (*journal.Repo)(nil)
	_ seeder.Authenticator = (*auth.Service)(nil)
)
