package infra

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/itssoni10/ELance/internal/modules/auth/domain"
)

// memPendingStore keeps pending signups in process memory, one record per
// email. Codes do not survive a restart; deployments that need that use
// the redis store. The single mutex serializes all four operations.
type memPendingStore struct {
	mu      sync.Mutex
	pending map[string]*domain.PendingRegistration // email -> record
}

func NewMemPendingStore() domain.PendingStore {
	return &memPendingStore{pending: make(map[string]*domain.PendingRegistration)}
}

func (s *memPendingStore) Create(email, code string, profile domain.CapturedProfile, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[email] = &domain.PendingRegistration{
		Email:    email,
		Code:     code,
		Profile:  profile,
		IssuedAt: now,
	}
	return nil
}

func (s *memPendingStore) Get(email string) (*domain.PendingRegistration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[email]
	if !ok {
		return nil, domain.ErrNoPendingSignup
	}
	cp := *p
	return &cp, nil
}

func (s *memPendingStore) Replace(email, newCode string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pending[email]
	if !ok {
		return domain.ErrNoPendingSignup
	}
	p.Code = newCode
	// IssuedAt never moves backwards, even if the wall clock does.
	if now.After(p.IssuedAt) {
		p.IssuedAt = now
	}
	return nil
}

func (s *memPendingStore) Delete(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, email)
	return nil
}

type memUserRepo struct {
	mu      sync.RWMutex
	users   map[string]*domain.User // id -> user
	byEmail map[string]string       // email -> id
}

func NewMemUserRepo() domain.UserRepo {
	return &memUserRepo{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *memUserRepo) Create(p domain.CreateUserParams) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(p.Email)
	if _, ok := r.byEmail[email]; ok {
		return nil, domain.ErrEmailTaken
	}
	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.New().String(),
		Username:     p.Username,
		Email:        email,
		UserType:     p.UserType,
		PasswordHash: p.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	r.byEmail[email] = u.ID
	return u, nil
}

func (r *memUserRepo) GetByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

func (r *memUserRepo) GetByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) ExistsByEmail(email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (r *memUserRepo) UpdateCareerProfile(userID string, currentRole, currentCompany *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	if currentRole != nil {
		u.CurrentRole = currentRole
	}
	if currentCompany != nil {
		u.CurrentCompany = currentCompany
	}
	u.UpdatedAt = time.Now().UTC()
	return nil
}
