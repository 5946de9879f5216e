package auth

import "github.com/heartmarshall/moodjournal-backend/internal/domain"

// AuthResult is returned by SignUp and SignIn.
type AuthResult struct {
	Token   string
	User    *domain.User
	Session *domain.Session
}
