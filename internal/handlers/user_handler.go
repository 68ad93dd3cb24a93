package handlers

import (
	"net/http"

	"kinshare/internal/service"
)

// UserHandler serves the caller's profile and the member directory
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser returns the caller's profile and the families they belong to
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	account, err := h.userService.GetAccount(user)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, account)
}

// ListMembers returns the redacted profiles of all users
func (h *UserHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	profiles, err := h.userService.ListMembers(user)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profiles)
}
