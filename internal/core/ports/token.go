package ports

import "github.com/shopstack/accounts-service/internal/core/domain"

// TokenIssuer signs Claims into a time-bounded session token.
type TokenIssuer interface {
	Issue(claims domain.Claims) (string, error)
}

// TokenVerifier decodes a session token back into Claims without any
// storage round trip.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
