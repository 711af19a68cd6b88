package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

const constraintRolesName = "roles_name_key"

// RoleRepository implements ports.RoleRepository on Postgres.
type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	const q = `
INSERT INTO roles (name, description, is_active)
VALUES ($1, $2, $3)
RETURNING id, name, description, is_active`

	created, err := scanRole(r.pool.QueryRow(ctx, q, role.Name, role.Description, role.IsActive))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintRolesName {
			return nil, domain.ErrDuplicateRole
		}
		return nil, fmt.Errorf("insert role: %w", err)
	}
	return created, nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	const q = `SELECT id, name, description, is_active FROM roles WHERE name = $1`
	return r.findOne(ctx, q, name)
}

func (r *RoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Role, error) {
	const q = `SELECT id, name, description, is_active FROM roles WHERE id = $1`
	return r.findOne(ctx, q, id)
}

func (r *RoleRepository) ListActive(ctx context.Context) ([]domain.Role, error) {
	const q = `SELECT id, name, description, is_active FROM roles WHERE is_active ORDER BY name`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.IsActive); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (r *RoleRepository) findOne(ctx context.Context, query string, arg any) (*domain.Role, error) {
	role, err := scanRole(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role: %w", err)
	}
	return role, nil
}

func scanRole(row pgx.Row) (*domain.Role, error) {
	var role domain.Role
	if err := row.Scan(&role.ID, &role.Name, &role.Description, &role.IsActive); err != nil {
		return nil, err
	}
	return &role, nil
}
