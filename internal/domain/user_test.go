package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/msomdec/user-service/internal/domain"
)

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
	fields := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		fields[f.Field] = f.Message
	}
	return fields
}

func TestNewUser_Valid(t *testing.T) {
	now := time.Now().UTC()

	user, err := domain.NewUser("user_1", "a@b.com", "Alice", now, now)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	if user.ID != "user_1" || user.Email != "a@b.com" || user.Name != "Alice" {
		t.Fatalf("unexpected user fields: %+v", user)
	}
	if !user.CreatedAt.Equal(now) || !user.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps to equal %v, got %v / %v", now, user.CreatedAt, user.UpdatedAt)
	}
}

func TestNewUser_TrimsName(t *testing.T) {
	now := time.Now().UTC()

	user, err := domain.NewUser("user_1", "a@b.com", "  Alice  ", now, now)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if user.Name != "Alice" {
		t.Fatalf("expected trimmed name 'Alice', got %q", user.Name)
	}
}

func TestNewUser_BlankID(t *testing.T) {
	now := time.Now().UTC()

	_, err := domain.NewUser("   ", "a@b.com", "Alice", now, now)
	fields := validationFields(t, err)
	if _, ok := fields["id"]; !ok {
		t.Fatalf("expected a failure on field 'id', got %v", fields)
	}
}

func TestNewUser_InvalidEmail(t *testing.T) {
	now := time.Now().UTC()

	for _, email := range []string{"", "not-an-email", "a@b", "a b@c.com", "@b.com"} {
		_, err := domain.NewUser("user_1", email, "Alice", now, now)
		fields := validationFields(t, err)
		if _, ok := fields["email"]; !ok {
			t.Fatalf("email %q: expected a failure on field 'email', got %v", email, fields)
		}
	}
}

func TestNewUser_EmailTooLong(t *testing.T) {
	now := time.Now().UTC()
	email := strings.Repeat("a", 250) + "@example.com"

	_, err := domain.NewUser("user_1", email, "Alice", now, now)
	fields := validationFields(t, err)
	if _, ok := fields["email"]; !ok {
		t.Fatalf("expected a failure on field 'email', got %v", fields)
	}
}

func TestNewUser_BlankName(t *testing.T) {
	now := time.Now().UTC()

	_, err := domain.NewUser("user_1", "a@b.com", "   ", now, now)
	fields := validationFields(t, err)
	if _, ok := fields["name"]; !ok {
		t.Fatalf("expected a failure on field 'name', got %v", fields)
	}
}

func TestNewUser_NameTooLong(t *testing.T) {
	now := time.Now().UTC()

	_, err := domain.NewUser("user_1", "a@b.com", strings.Repeat("x", 101), now, now)
	fields := validationFields(t, err)
	if _, ok := fields["name"]; !ok {
		t.Fatalf("expected a failure on field 'name', got %v", fields)
	}
}

func TestNewUser_ReportsAllFailures(t *testing.T) {
	now := time.Now().UTC()

	_, err := domain.NewUser("", "nope", "", now, now)
	fields := validationFields(t, err)
	for _, field := range []string{"id", "email", "name"} {
		if _, ok := fields[field]; !ok {
			t.Fatalf("expected a failure on field %q, got %v", field, fields)
		}
	}
}

func TestUser_UpdateName(t *testing.T) {
	created := time.Now().UTC().Add(-time.Minute)

	user, err := domain.NewUser("user_1", "a@b.com", "Alice", created, created)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	updated, err := user.UpdateName("Alicia")
	if err != nil {
		t.Fatalf("UpdateName: %v", err)
	}

	if updated.Name != "Alicia" {
		t.Fatalf("expected name 'Alicia', got %q", updated.Name)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("expected CreatedAt preserved, got %v", updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(user.UpdatedAt) {
		t.Fatalf("expected UpdatedAt to advance: %v -> %v", user.UpdatedAt, updated.UpdatedAt)
	}

	// Original value is untouched.
	if user.Name != "Alice" || !user.UpdatedAt.Equal(created) {
		t.Fatalf("original user was mutated: %+v", user)
	}
}

func TestUser_UpdateName_Invalid(t *testing.T) {
	created := time.Now().UTC().Add(-time.Minute)

	user, err := domain.NewUser("user_1", "a@b.com", "Alice", created, created)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	_, err = user.UpdateName("  ")
	fields := validationFields(t, err)
	if _, ok := fields["name"]; !ok {
		t.Fatalf("expected a failure on field 'name', got %v", fields)
	}

	if user.Name != "Alice" {
		t.Fatalf("original user was mutated: %+v", user)
	}
}
