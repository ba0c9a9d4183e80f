package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/user-service/internal/domain"
)

// UserService handles user account operations. It depends only on the
// repository abstraction and never on a concrete store, and it does no
// logging: expected failures surface as typed errors for the HTTP layer
// to translate.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create registers a new user with a generated ID. It fails with
// domain.ErrEmailExists when the email is already taken, and with a
// *domain.ValidationError when the input violates entity invariants.
func (s *UserService) Create(ctx context.Context, email, name string) (*domain.User, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	now := time.Now().UTC()
	user, err := domain.NewUser(newUserID(), email, name, now, now)
	if err != nil {
		return nil, err
	}

	// The repository insert re-checks the email atomically, so a
	// concurrent create that slipped past the lookup above still
	// yields exactly one success.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns the user with the given ID, or domain.ErrNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// List returns every persisted user. An empty store yields an empty
// slice, never an error.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// Update applies a partial update to the user with the given ID. A nil
// name leaves the entity unchanged, including its UpdatedAt; only a real
// name change produces a fresh timestamp.
func (s *UserService) Update(ctx context.Context, id string, name *string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil {
		updated, err := user.UpdateName(*name)
		if err != nil {
			return nil, err
		}
		user = updated
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes the user with the given ID. It fails with
// domain.ErrNotFound when no such user exists, so a repeated delete of
// the same ID never reports a false success.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return false, err
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return deleted, nil
}

// newUserID generates an opaque, collision-resistant user ID.
func newUserID() string {
	return "user_" + uuid.NewString()
}
