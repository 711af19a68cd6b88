package domain

import (
	"context"
	"time"
)

// AuthEventType classifies entries in the authentication audit trail.
type AuthEventType string

const (
	EventSignup       AuthEventType = "signup"
	EventLoginSuccess AuthEventType = "login_success"
	EventLoginFailure AuthEventType = "login_failure"
)

type remoteIPKey struct{}

// WithRemoteIP stores the caller's address in the context so the audit trail
// can attribute events without widening the service contracts.
func WithRemoteIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, remoteIPKey{}, ip)
}

// RemoteIP returns the address stored by WithRemoteIP, or "".
func RemoteIP(ctx context.Context) string {
	ip, _ := ctx.Value(remoteIPKey{}).(string)
	return ip
}

// AuthEvent records a single signup or login attempt for the audit trail.
// The secret itself never appears here, only the outcome.
type AuthEvent struct {
	Type      AuthEventType
	Email     string
	AccountID string // empty when the attempt never resolved an account
	RemoteIP  string
	Reason    string // failure reason, empty on success
	Timestamp time.Time
}
