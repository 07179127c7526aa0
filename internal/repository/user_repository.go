package repository

import (
	"strings"
	"sync"
	"time"

	"github.com/trimtime/queue-service/internal/model"
)

// UserRepo is the in-memory account store.  Accounts carry no credential
// material: sign-in is simulated, so logging in with an unseen email simply
// creates the account on the fly.
type UserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]*model.User
	byID    map[uint64]*model.User
	nextID  uint64
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[uint64]*model.User),
		nextID:  1,
	}
}

// Create registers a new account.  Emails are normalized to lower case and
// must be unique.
func (r *UserRepo) Create(name, email, role string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return model.User{}, ErrEmailExists
	}
	u := &model.User{
		ID:        r.nextID,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.byEmail[email] = u
	r.byID[u.ID] = u
	return *u, nil
}

// GetOrCreate returns the account for email, creating it with the given name
// and role when it does not exist yet.  This is the login path: any
// well-formed email signs in.
func (r *UserRepo) GetOrCreate(name, email, role string) model.User {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byEmail[email]; ok {
		return *u
	}
	u := &model.User{
		ID:        r.nextID,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.byEmail[email] = u
	r.byID[u.ID] = u
	return *u
}

// GetByID fetches an account by id or returns ErrNotFound.
func (r *UserRepo) GetByID(id uint64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.byID[id]; ok {
		return *u, nil
	}
	return model.User{}, ErrNotFound
}
