package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

type RoleService interface {
	// ResolveDefaultRole returns the "customer" role, creating it on first
	// use. Creation is idempotent under concurrent first-time calls.
	ResolveDefaultRole(ctx context.Context) (*domain.Role, error)

	// ResolveRoleByID fails with ErrRoleNotFound or ErrRoleInactive.
	ResolveRoleByID(ctx context.Context, id uuid.UUID) (*domain.Role, error)

	ListActive(ctx context.Context) ([]domain.Role, error)
}
