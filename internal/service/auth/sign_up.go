package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// SignUp creates a user with a credential account and opens a session, all in
// one transaction. Returns ErrAlreadyExists if the email is already taken.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = domain.NormalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp hash password: %w", err)
	}
	hashStr := string(hash)

	// Step 3: Create user + account + session in a transaction.
	// Email uniqueness is enforced by a DB constraint.
	var result *AuthResult

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now().UTC().Truncate(time.Microsecond)
		user, err := s.users.Create(txCtx, &domain.User{
			ID:        uuid.NewString(),
			Name:      input.Name,
			Email:     input.Email,
			Image:     input.Image,
			Role:      domain.UserRoleUser,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if _, err := s.accounts.Create(txCtx, &domain.Account{
			ID:           uuid.NewString(),
			UserID:       user.ID,
			ProviderID:   domain.AccountProviderCredential,
			PasswordHash: &hashStr,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		result, err = s.startSession(txCtx, user, input.Client)
		if err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.SignUp: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", result.User.ID))

	return result, nil
}
