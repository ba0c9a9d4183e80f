package domain

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// emailPattern is deliberately loose: something before the @, something
// after it, and a dot somewhere in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	maxEmailLength = 255
	maxNameLength  = 100
)

// User represents a registered user. A User value is never observable in
// an invalid state: NewUser runs every invariant check and fails instead
// of producing a partially valid value.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser constructs a validated User. The name is stored trimmed.
// On failure it returns a *ValidationError listing every violated field.
func NewUser(id, email, name string, createdAt, updatedAt time.Time) (*User, error) {
	ve := &ValidationError{}

	if strings.TrimSpace(id) == "" {
		ve.add("id", "user ID is required")
	}

	switch {
	case email == "":
		ve.add("email", "email is required")
	case len(email) > maxEmailLength:
		ve.add("email", "email must not exceed "+strconv.Itoa(maxEmailLength)+" characters")
	case !emailPattern.MatchString(email):
		ve.add("email", "invalid email address")
	}

	trimmedName := strings.TrimSpace(name)
	switch {
	case trimmedName == "":
		ve.add("name", "name is required")
	case len(trimmedName) > maxNameLength:
		ve.add("name", "name must not exceed "+strconv.Itoa(maxNameLength)+" characters")
	}

	if len(ve.Fields) > 0 {
		return nil, ve
	}

	return &User{
		ID:        id,
		Email:     email,
		Name:      trimmedName,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// UpdateName returns a new User with the given name and a fresh UpdatedAt.
// The receiver is never mutated; all invariant checks run again, so an
// invalid name fails and leaves the original as the only valid value.
func (u *User) UpdateName(newName string) (*User, error) {
	return NewUser(u.ID, u.Email, newName, u.CreatedAt, time.Now().UTC())
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// FindByID returns ErrNotFound when no user has the given ID.
	FindByID(ctx context.Context, id string) (*User, error)
	// FindByEmail matches case-insensitively and returns ErrNotFound
	// when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindAll returns every stored user. Order is not guaranteed.
	FindAll(ctx context.Context) ([]User, error)
	// Create inserts the user unless another record already holds its
	// email (case-insensitive), in which case it returns ErrEmailExists.
	// The existence check and the insert are a single atomic step.
	Create(ctx context.Context, user *User) error
	// Update upserts the user, with the same email constraint as Create.
	Update(ctx context.Context, user *User) error
	// Delete reports whether a record existed and was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
