package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants admin access.
func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// AccountProvider identifies how an account authenticates.
type AccountProvider string

const (
	// AccountProviderCredential is email + password.
	AccountProviderCredential AccountProvider = "credential"
)

func (p AccountProvider) String() string { return string(p) }

func (p AccountProvider) IsValid() bool {
	return p == AccountProviderCredential
}
