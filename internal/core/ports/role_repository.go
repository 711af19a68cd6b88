package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

// RoleRepository defines the persistence interface for roles. Role names are
// unique at the constraint level; Create surfaces a violation as
// ErrDuplicateRole so callers can recover from a lost creation race.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)

	// ListActive returns roles with IsActive = true, ordered by name.
	ListActive(ctx context.Context) ([]domain.Role, error)
}
