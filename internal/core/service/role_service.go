package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopstack/accounts-service/internal/core/domain"
	"github.com/shopstack/accounts-service/internal/core/ports"
)

const defaultRoleDescription = "Regular customer role"

// RoleService resolves roles for signup and exposes the active-role listing.
type RoleService struct {
	repo ports.RoleRepository
	log  zerolog.Logger
}

func NewRoleService(repo ports.RoleRepository, log zerolog.Logger) *RoleService {
	return &RoleService{repo: repo, log: log}
}

// ResolveDefaultRole returns the "customer" role, creating it the first time
// it is needed. Two concurrent first-time calls may both attempt the insert;
// the unique constraint on the role name guarantees a single persisted row,
// and the loser re-reads the winner's.
func (s *RoleService) ResolveDefaultRole(ctx context.Context) (*domain.Role, error) {
	role, err := s.repo.FindByName(ctx, domain.DefaultRoleName)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, domain.ErrRoleNotFound) {
		return nil, fmt.Errorf("resolve default role: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Role{
		Name:        domain.DefaultRoleName,
		Description: defaultRoleDescription,
		IsActive:    true,
	})
	if err == nil {
		s.log.Info().Str("role", domain.DefaultRoleName).Msg("default role created")
		return created, nil
	}
	if errors.Is(err, domain.ErrDuplicateRole) {
		return s.repo.FindByName(ctx, domain.DefaultRoleName)
	}
	return nil, fmt.Errorf("create default role: %w", err)
}

// ResolveRoleByID returns the role or ErrRoleNotFound / ErrRoleInactive.
func (s *RoleService) ResolveRoleByID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !role.IsActive {
		return nil, domain.ErrRoleInactive
	}
	return role, nil
}

// ListActive returns the active roles ordered by name.
func (s *RoleService) ListActive(ctx context.Context) ([]domain.Role, error) {
	return s.repo.ListActive(ctx)
}
