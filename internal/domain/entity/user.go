package entity

import (
	"time"
)

// User represents a registered account in the system
type User struct {
	ID                    string    `bson:"_id,omitempty" json:"id"`
	Username              string    `bson:"username" json:"username"`
	Email                 string    `bson:"email" json:"email"`
	PasswordHash          string    `bson:"password_hash" json:"-"`
	Role                  UserRole  `bson:"role" json:"role"`
	Enabled               bool      `bson:"enabled" json:"enabled"`
	AccountNonLocked      bool      `bson:"account_non_locked" json:"account_non_locked"`
	AccountNonExpired     bool      `bson:"account_non_expired" json:"account_non_expired"`
	AccountExpiryDate     time.Time `bson:"account_expiry_date" json:"account_expiry_date"`
	CredentialsNonExpired bool      `bson:"credentials_non_expired" json:"credentials_non_expired"`
	CredentialsExpiryDate time.Time `bson:"credentials_expiry_date" json:"credentials_expiry_date"`
	TwoFactorEnabled      bool      `bson:"two_factor_enabled" json:"two_factor_enabled"`
	SignUpMethod          string    `bson:"sign_up_method" json:"sign_up_method"`
	CreatedAt             time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// ValidRole reports whether name is one of the closed role set.
func ValidRole(name string) bool {
	switch UserRole(name) {
	case UserRoleAdmin, UserRoleUser:
		return true
	}
	return false
}

// Role is the persisted role row. Rows for USER and ADMIN are created
// once at bootstrap and referenced by many users afterwards.
type Role struct {
	ID   string   `bson:"_id,omitempty" json:"id"`
	Name UserRole `bson:"name" json:"name"`
}

// Principal is the authenticated identity attached to a request after a
// successful credential check. It is never persisted or cached across
// requests.
type Principal struct {
	Username string
	Role     UserRole
}
