// Package token implements the session token collaborator: it signs Claims
// into a time-bounded JWT and decodes tokens back into Claims without any
// storage round trip.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// sessionClaims is the wire shape of a session token: the identity claims
// plus the standard registered claims.
type sessionClaims struct {
	UserID        string `json:"id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

// JWTManager issues and verifies HS256 session tokens. The signing secret is
// injected at construction; nothing here reads the environment.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs the claims into a token that expires after the configured TTL.
func (m *JWTManager) Issue(claims domain.Claims) (string, error) {
	now := time.Now()
	sc := sessionClaims{
		UserID:        claims.ID,
		Email:         claims.Email,
		Role:          claims.Role,
		EmailVerified: claims.EmailVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sc)
	return t.SignedString(m.secret)
}

// Verify decodes a token back into Claims. The signing algorithm is pinned to
// HS256; anything else is rejected before signature verification.
func (m *JWTManager) Verify(token string) (*domain.Claims, error) {
	var sc sessionClaims
	tkn, err := jwt.ParseWithClaims(token, &sc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	return &domain.Claims{
		ID:            sc.UserID,
		Email:         sc.Email,
		Role:          sc.Role,
		EmailVerified: sc.EmailVerified,
	}, nil
}
