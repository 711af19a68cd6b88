package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

// --- Account repository stub ---

type stubAccountRepo struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[string]*domain.Account // keyed by email
	roles    *stubRoleRepo
}

func newStubAccountRepo(roles *stubRoleRepo) *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account), roles: roles}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[account.Email]; exists {
		return nil, domain.ErrDuplicateEmail
	}
	for _, a := range r.accounts {
		if a.Phone == account.Phone {
			return nil, domain.ErrDuplicatePhone
		}
	}
	copy := cloneAccount(account)
	r.nextID++
	copy.ID = r.nextID
	r.accounts[copy.Email] = cloneAccount(copy)
	return cloneAccount(copy), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.accounts[email]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByPhone(_ context.Context, phone string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.accounts {
		if a.Phone == phone {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindByEmailWithRole(ctx context.Context, email string) (*domain.Account, *domain.Role, error) {
	account, err := r.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	role, err := r.roles.FindByID(ctx, account.RoleID)
	if err != nil {
		return nil, nil, err
	}
	return account, role, nil
}

// --- Role repository stub ---

type stubRoleRepo struct {
	mu    sync.Mutex
	byID  map[uuid.UUID]*domain.Role
	calls int // Create attempts, for idempotency assertions
}

func newStubRoleRepo() *stubRoleRepo {
	return &stubRoleRepo{byID: make(map[uuid.UUID]*domain.Role)}
}

func (r *stubRoleRepo) add(role *domain.Role) *domain.Role {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	r.byID[role.ID] = role
	return role
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	for _, existing := range r.byID {
		if existing.Name == role.Name {
			return nil, domain.ErrDuplicateRole
		}
	}
	created := *role
	clone := r.add(&created)
	out := *clone
	return &out, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, role := range r.byID {
		if role.Name == name {
			out := *role
			return &out, nil
		}
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if role, ok := r.byID[id]; ok {
		out := *role
		return &out, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) ListActive(_ context.Context) ([]domain.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var roles []domain.Role
	for _, role := range r.byID {
		if role.IsActive {
			roles = append(roles, *role)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })
	return roles, nil
}

// --- Audit recorder stub ---

type stubRecorder struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (r *stubRecorder) Record(event domain.AuthEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *stubRecorder) last() *domain.AuthEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	event := r.events[len(r.events)-1]
	return &event
}
