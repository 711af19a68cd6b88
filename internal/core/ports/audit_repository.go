package ports

import (
	"context"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

// AuditRepository persists auth events to the append-only audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}
