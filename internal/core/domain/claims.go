package domain

import "strconv"

// Claims is the minimal identity projection embedded in a session token and
// rebuilt into the client-visible session object on every session read.
// It must never carry the password hash, the phone number, or timestamps.
type Claims struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
}

// BuildClaims projects an authenticated account and its resolved role name
// into Claims. Pure: no lookups, no side effects, same input → same output.
func BuildClaims(account *Account, roleName string) Claims {
	return Claims{
		ID:            strconv.FormatInt(account.ID, 10),
		Email:         account.Email,
		Role:          roleName,
		EmailVerified: account.EmailVerified,
	}
}
