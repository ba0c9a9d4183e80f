package handler

import (
	"time"

	"github.com/msomdec/user-service/internal/domain"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

func toUserDTOs(users []domain.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return dtos
}

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
	Name  string `json:"name" validate:"required,max=100"`
}

// UpdateUserRequest is the payload for PUT /users/{id}. A missing name
// means "leave it unchanged".
type UpdateUserRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
}

// deleteResult is the response body for a successful delete.
type deleteResult struct {
	Success bool `json:"success"`
}
