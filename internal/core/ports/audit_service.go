package ports

import (
	"context"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

// AuditService processes a single auth event end-to-end.
type AuditService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// AuditRecorder is the fire-and-forget side used by the login/signup path.
// Record must never block the request on audit persistence.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}
