package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shopstack/accounts-service/internal/core/domain"
	"github.com/shopstack/accounts-service/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists auth events to the
// audit trail. Persistence runs off the request path; a failed write is
// logged by the caller, never retried.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("audit: insert event: %w", err)
	}

	s.log.Debug().
		Str("type", string(event.Type)).
		Str("email", event.Email).
		Str("reason", event.Reason).
		Msg("auth event recorded")
	return nil
}
