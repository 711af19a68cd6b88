package ports

import (
	"context"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

// AccountRepository defines the persistence interface for accounts.
// Uniqueness of email and phone is enforced by the store's constraints;
// Create surfaces a violation as ErrDuplicateEmail or ErrDuplicatePhone.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Account, error)

	// FindByEmailWithRole returns the account together with its role in a
	// single joined read, so login never races a separate role lookup.
	FindByEmailWithRole(ctx context.Context, email string) (*domain.Account, *domain.Role, error)

	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
