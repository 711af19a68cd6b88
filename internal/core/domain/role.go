package domain

import (
	"errors"

	"github.com/google/uuid"
)

// DefaultRoleName is the role assigned when signup does not request one.
const DefaultRoleName = "customer"

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrRoleInactive  = errors.New("role inactive")
	ErrDuplicateRole = errors.New("role already exists")

	// ErrInvalidRole is the external face of ErrRoleNotFound and
	// ErrRoleInactive when a caller explicitly requested a role id.
	ErrInvalidRole = errors.New("invalid or inactive role")
)

// Role is a named permission group shared by many accounts. An inactive role
// invalidates any account referencing it for signup purposes.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
}
