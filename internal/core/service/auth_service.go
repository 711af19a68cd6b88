package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopstack/accounts-service/internal/core/domain"
	"github.com/shopstack/accounts-service/internal/core/ports"
)

// AuthService implements signup registration and credential verification.
type AuthService struct {
	accounts ports.AccountRepository
	roles    ports.RoleService
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	roles ports.RoleService,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		accounts: accounts,
		roles:    roles,
		hasher:   hasher,
		tokens:   tokens,
		audit:    audit,
		log:      log,
	}
}

// Register creates a new account. Steps run in a fixed order and short-circuit
// on the first failure: duplicate email, duplicate phone, role resolution,
// hashing, insert. The duplicate-check reads are an optimization; the store's
// unique constraints are the actual guarantee under concurrent signups.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisteredAccount, error) {
	email := normalizeEmail(in.Email)

	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("register: check email: %w", err)
	}

	if _, err := s.accounts.FindByPhone(ctx, in.Phone); err == nil {
		return nil, domain.ErrDuplicatePhone
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("register: check phone: %w", err)
	}

	role, err := s.resolveTargetRole(ctx, in.RoleID)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Name:          in.Name,
		Email:         email,
		Phone:         in.Phone,
		PasswordHash:  hash,
		RoleID:        role.ID,
		EmailVerified: false,
		PhoneVerified: false,
		Status:        domain.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		// A concurrent signup can win between the read above and this insert;
		// the constraint violation carries the authoritative answer.
		if errors.Is(err, domain.ErrDuplicateEmail) || errors.Is(err, domain.ErrDuplicatePhone) {
			return nil, err
		}
		return nil, fmt.Errorf("register: insert account: %w", err)
	}

	id := strconv.FormatInt(created.ID, 10)
	s.audit.Record(domain.AuthEvent{
		Type:      domain.EventSignup,
		Email:     created.Email,
		AccountID: id,
		RemoteIP:  domain.RemoteIP(ctx),
		Timestamp: now,
	})
	s.log.Info().Str("account_id", id).Str("role", role.Name).Msg("account registered")

	return &ports.RegisteredAccount{
		ID:    id,
		Name:  created.Name,
		Email: created.Email,
		Phone: created.Phone,
	}, nil
}

// Login verifies credentials and issues a signed session token. Missing
// fields, an unknown email, a non-active account, and a wrong password all
// collapse into the same failure shape to prevent account enumeration.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		s.recordLoginFailure(ctx, email, "missing_credentials")
		return nil, domain.ErrMissingCredentials
	}

	account, role, err := s.accounts.FindByEmailWithRole(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.recordLoginFailure(ctx, email, "unknown_email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: find account: %w", err)
	}

	if !account.CanAuthenticate() {
		s.recordLoginFailure(ctx, email, "account_"+string(account.Status))
		return nil, domain.ErrInvalidCredentials
	}

	if !role.IsActive {
		s.recordLoginFailure(ctx, email, "role_inactive")
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(ctx, account.PasswordHash, password); err != nil {
		s.recordLoginFailure(ctx, email, "password_mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	claims := domain.BuildClaims(account, role.Name)
	token, err := s.tokens.Issue(claims)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.audit.Record(domain.AuthEvent{
		Type:      domain.EventLoginSuccess,
		Email:     account.Email,
		AccountID: claims.ID,
		RemoteIP:  domain.RemoteIP(ctx),
		Timestamp: time.Now().UTC(),
	})

	return &ports.LoginResult{Token: token, Claims: claims}, nil
}

// resolveTargetRole picks the explicitly requested role or the default one.
// An unknown, malformed, or inactive requested role is a client error.
func (s *AuthService) resolveTargetRole(ctx context.Context, roleID string) (*domain.Role, error) {
	if roleID == "" {
		role, err := s.roles.ResolveDefaultRole(ctx)
		if err != nil {
			return nil, fmt.Errorf("register: resolve default role: %w", err)
		}
		return role, nil
	}

	id, err := uuid.Parse(roleID)
	if err != nil {
		return nil, domain.ErrInvalidRole
	}
	role, err := s.roles.ResolveRoleByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) || errors.Is(err, domain.ErrRoleInactive) {
			return nil, domain.ErrInvalidRole
		}
		return nil, fmt.Errorf("register: resolve role: %w", err)
	}
	return role, nil
}

func (s *AuthService) recordLoginFailure(ctx context.Context, email, reason string) {
	s.audit.Record(domain.AuthEvent{
		Type:      domain.EventLoginFailure,
		Email:     normalizeEmail(email),
		RemoteIP:  domain.RemoteIP(ctx),
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}

// normalizeEmail makes lookups case-insensitive: addresses are stored and
// queried in lower case.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
