package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/msomdec/user-service/internal/domain"
)

// UserRepository implements domain.UserRepository with an in-process map.
// The store owns the authoritative copy of every user: values are copied
// on the way in and out, so callers never share mutable state with it.
// Nothing is persisted across restarts.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // lowercased email -> id
}

// NewUserRepository creates an empty in-memory UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.byID))
	for _, user := range r.byID {
		users = append(users, user)
	}
	return users, nil
}

// Create inserts the user if no other record holds its email. The check
// and the insert happen under one lock, so two concurrent creates with
// the same email cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(user)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(user)
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	delete(r.byID, id)
	delete(r.byEmail, emailKey(user.Email))
	return true, nil
}

// Clear removes every record. Test utility only.
func (r *UserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]domain.User)
	r.byEmail = make(map[string]string)
}

// Count returns the number of stored users.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}

// save upserts under an already-held write lock, keeping the email index
// consistent when a record's email changes.
func (r *UserRepository) save(user *domain.User) error {
	key := emailKey(user.Email)
	if ownerID, taken := r.byEmail[key]; taken && ownerID != user.ID {
		return fmt.Errorf("save user %s: %w", user.ID, domain.ErrEmailExists)
	}

	if prev, ok := r.byID[user.ID]; ok {
		if prevKey := emailKey(prev.Email); prevKey != key {
			delete(r.byEmail, prevKey)
		}
	}

	r.byID[user.ID] = *user
	r.byEmail[key] = user.ID
	return nil
}

func emailKey(email string) string {
	return strings.ToLower(email)
}
