// Package seeder loads the bundled sample journal entries for a demo user.
package seeder

import (
	"context"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/auth"
)

// EntryBulkRepo is the batch insert contract consumed by the pipeline.
// Implemented by journal.Repo.
type EntryBulkRepo interface {
	BulkCreate(ctx context.Context, entries []domain.JournalEntry) (int, error)
}

// Authenticator opens an account for the demo user. Implemented by auth.Service.
type Authenticator interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error)
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
}
