package ports

import (
	"context"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to Register.
// The payload has already passed shape validation at the boundary.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	RoleID   string // optional uuid; empty means the default role
}

// RegisteredAccount is the projection returned after a successful signup.
// It deliberately carries no hash, status, or verification flags.
type RegisteredAccount struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// LoginResult carries the signed session token plus the claims that went
// into it, so the transport layer can render the session object without
// decoding the token it just issued.
type LoginResult struct {
	Token  string
	Claims domain.Claims
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*RegisteredAccount, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
