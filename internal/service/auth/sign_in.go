package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// SignIn authenticates a user with email + password and opens a new session.
// Returns ErrUnauthorized if the email is unknown or the password is wrong,
// and ErrForbidden if the user is currently banned.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = domain.NormalizeEmail(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user by email
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	// Step 3: Find the credential account for this user
	account, err := s.accounts.GetByUserAndProvider(ctx, user.ID, domain.AccountProviderCredential)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.SignIn get account: %w", err)
	}

	// Step 4: Verify password
	if account.PasswordHash == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Step 5: Banned users may not sign in
	if user.IsBanned(s.now()) {
		s.log.WarnContext(ctx, "banned user sign-in rejected", slog.String("user_id", user.ID))
		return nil, domain.ErrForbidden
	}

	// Step 6: Open session
	result, err := s.startSession(ctx, user, input.Client)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", user.ID))

	return result, nil
}
