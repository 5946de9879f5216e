package auth

import (
	"net/mail"
	"unicode/utf8"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 128
	maxNameLength     = 100
	maxEmailLength    = 254
)

// ClientInfo describes the client a session was opened from.
type ClientInfo struct {
	IPAddress *string
	UserAgent *string
}

// SignUpInput holds parameters for email + password registration.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Image    *string
	Client   ClientInfo
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	errs = append(errs, validateEmail(i.Email)...)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SignInInput holds parameters for email + password login.
type SignInInput struct {
	Email    string
	Password string
	Client   ClientInfo
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateEmail(i.Email)...)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(email string) []domain.FieldError {
	if email == "" {
		return []domain.FieldError{{Field: "email", Message: "required"}}
	}
	if len(email) > maxEmailLength {
		return []domain.FieldError{{Field: "email", Message: "too long"}}
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []domain.FieldError{{Field: "email", Message: "invalid email"}}
	}
	return nil
}
