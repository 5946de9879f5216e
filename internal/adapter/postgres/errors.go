package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// pgCodeErrors maps SQLSTATE codes to the domain error they surface as.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation: owner vanished
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"22001": domain.ErrValidation,    // string_data_right_truncation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError wraps a pgx error as "<entity> <id>: <domain error>".
// Context cancellation and unknown database errors keep their original
// error in the chain.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := pgCodeErrors[pgErr.Code]; ok {
			return fmt.Errorf("%s %s: %w", entity, id, mapped)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
