package domain

import "time"

// User represents an authenticated application user.
type User struct {
	ID            string
	Name          string
	Email         string
	EmailVerified bool
	Image         *string
	Role          UserRole
	Banned        bool
	BanReason     *string
	BanExpires    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsBanned reports whether the ban is in effect at now.
// A ban without an expiry never lapses.
func (u *User) IsBanned(now time.Time) bool {
	if !u.Banned {
		return false
	}
	if u.BanExpires == nil {
		return true
	}
	return u.BanExpires.After(now)
}

// Account holds the credentials a user signs in with.
type Account struct {
	ID           string
	UserID       string
	ProviderID   AccountProvider
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is a server-side login session. Deleting the row revokes it.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// AuthSession is the resolved identity attached to a request.
type AuthSession struct {
	User    User
	Session Session
}
