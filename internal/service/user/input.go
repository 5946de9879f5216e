package user

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxBanReason     = 500
	maxAuditLimit    = 100
)

// ListUsersInput holds pagination for the admin user list.
type ListUsersInput struct {
	Limit  int
	Offset int
}

// Validate validates the list input. Zero Limit means the default.
func (i ListUsersInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > domain.MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", domain.MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BanUserInput holds parameters for banning a user.
type BanUserInput struct {
	UserID    string
	Reason    *string
	ExpiresIn *time.Duration
}

// Validate validates the ban input. A nil ExpiresIn bans permanently.
func (i BanUserInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if i.Reason != nil && utf8.RuneCountInString(*i.Reason) > maxBanReason {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long"})
	}
	if i.ExpiresIn != nil && *i.ExpiresIn <= 0 {
		errs = append(errs, domain.FieldError{Field: "expiresInSeconds", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
