package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents the lifecycle state of an account. Accounts are
// never hard-deleted; removal is modelled as a status transition.
type AccountStatus string

const (
	StatusActive    AccountStatus = "active"
	StatusInactive  AccountStatus = "inactive"
	StatusDeleted   AccountStatus = "deleted"
	StatusSuspended AccountStatus = "suspended"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrDuplicatePhone  = errors.New("phone number already exists")

	// ErrMissingCredentials and ErrInvalidCredentials are rendered with one
	// identical message at the HTTP boundary so callers cannot tell a missing
	// field, an unknown email, and a wrong password apart.
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Account models a registered user capable of authenticating.
type Account struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	PasswordHash  string
	RoleID        uuid.UUID
	EmailVerified bool
	PhoneVerified bool
	Status        AccountStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanAuthenticate reports whether the account's status admits a login.
func (a *Account) CanAuthenticate() bool {
	return a.Status == StatusActive
}
