package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/msomdec/user-service/internal/domain"
	"github.com/msomdec/user-service/internal/service"
)

// Stable error codes clients branch on.
const (
	codeValidation   = "VALIDATION_ERROR"
	codeEmailExists  = "USER_ALREADY_EXISTS"
	codeUserNotFound = "USER_NOT_FOUND"
	codeNotFound     = "NOT_FOUND"
	codeInternal     = "INTERNAL_ERROR"
)

// UserHandler handles user CRUD HTTP requests. It is the only layer that
// logs failures or assigns HTTP status codes.
type UserHandler struct {
	users *service.UserService
	dev   bool
}

// NewUserHandler creates a new UserHandler. In development mode internal
// error messages are passed through instead of sanitized.
func NewUserHandler(users *service.UserService, dev bool) *UserHandler {
	return &UserHandler{users: users, dev: dev}
}

// HandleCreate creates a new user from an {email, name} payload.
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeValidation, nil)
		return
	}
	if details := validateRequest(req); details != nil {
		writeError(w, http.StatusBadRequest, "validation failed", codeValidation, details)
		return
	}

	user, err := h.users.Create(r.Context(), req.Email, req.Name)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, toUserDTO(user))
}

// HandleList returns every user.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, toUserDTOs(users))
}

// HandleGet returns a single user by ID.
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, toUserDTO(user))
}

// HandleUpdate applies a partial {name?} update to a user.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	// An absent body is an empty partial update.
	var req UpdateUserRequest
	if err := readJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeValidation, nil)
		return
	}
	if details := validateRequest(req); details != nil {
		writeError(w, http.StatusBadRequest, "validation failed", codeValidation, details)
		return
	}

	user, err := h.users.Update(r.Context(), r.PathValue("id"), req.Name)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, toUserDTO(user))
}

// HandleDelete removes a user by ID.
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.users.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, deleteResult{Success: deleted})
}

// writeServiceError translates use-case failures into HTTP responses
// following the shared error taxonomy.
func (h *UserHandler) writeServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		details := make([]fieldDetail, len(ve.Fields))
		for i, f := range ve.Fields {
			details[i] = fieldDetail{Field: f.Field, Message: f.Message}
		}
		writeError(w, http.StatusBadRequest, "validation failed", codeValidation, details)
	case errors.Is(err, domain.ErrEmailExists):
		writeError(w, http.StatusConflict, "user with this email already exists", codeEmailExists, nil)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found", codeUserNotFound, nil)
	default:
		slog.Error("user request failed", "error", err)
		message := "internal server error"
		if h.dev {
			message = err.Error()
		}
		writeError(w, http.StatusInternalServerError, message, codeInternal, nil)
	}
}
