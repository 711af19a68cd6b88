package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

// Unique constraint names are part of the contract with the schema: a 23505
// on one of these is how concurrent duplicate signups are told apart.
const (
	constraintAccountsEmail = "accounts_email_key"
	constraintAccountsPhone = "accounts_phone_key"
)

const accountColumns = `id, name, email, phone, password_hash, role_id,
	is_email_verified, is_phone_verified, status, created_at, updated_at`

// AccountRepository implements ports.AccountRepository on Postgres.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	const q = `
INSERT INTO accounts (name, email, phone, password_hash, role_id,
	is_email_verified, is_phone_verified, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + accountColumns

	row := r.pool.QueryRow(ctx, q,
		a.Name, a.Email, a.Phone, a.PasswordHash, a.RoleID,
		a.EmailVerified, a.PhoneVerified, string(a.Status),
	)
	created, err := scanAccount(row)
	if err != nil {
		if dup := mapUniqueViolation(err); dup != nil {
			return nil, dup
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return created, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	return r.findOne(ctx, q, email)
}

func (r *AccountRepository) FindByPhone(ctx context.Context, phone string) (*domain.Account, error) {
	const q = `SELECT ` + accountColumns + ` FROM accounts WHERE phone = $1`
	return r.findOne(ctx, q, phone)
}

// FindByEmailWithRole joins the account with its role so the login path sees
// both in one consistent read.
func (r *AccountRepository) FindByEmailWithRole(ctx context.Context, email string) (*domain.Account, *domain.Role, error) {
	const q = `
SELECT a.id, a.name, a.email, a.phone, a.password_hash, a.role_id,
	a.is_email_verified, a.is_phone_verified, a.status, a.created_at, a.updated_at,
	r.id, r.name, r.description, r.is_active
FROM accounts a
JOIN roles r ON r.id = a.role_id
WHERE a.email = $1`

	var (
		a      domain.Account
		role   domain.Role
		status string
	)
	err := r.pool.QueryRow(ctx, q, email).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.RoleID,
		&a.EmailVerified, &a.PhoneVerified, &status, &a.CreatedAt, &a.UpdatedAt,
		&role.ID, &role.Name, &role.Description, &role.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrAccountNotFound
		}
		return nil, nil, fmt.Errorf("find account with role: %w", err)
	}
	a.Status = domain.AccountStatus(status)
	return &a, &role, nil
}

func (r *AccountRepository) findOne(ctx context.Context, query, arg string) (*domain.Account, error) {
	a, err := scanAccount(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return a, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		a      domain.Account
		status string
	)
	if err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.RoleID,
		&a.EmailVerified, &a.PhoneVerified, &status, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Status = domain.AccountStatus(status)
	return &a, nil
}

// mapUniqueViolation translates a 23505 into the matching domain error, or
// returns nil when the error is not a unique violation we recognize.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case constraintAccountsEmail:
		return domain.ErrDuplicateEmail
	case constraintAccountsPhone:
		return domain.ErrDuplicatePhone
	}
	return nil
}
