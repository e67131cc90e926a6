package user

import (
	"encoding/json"
	"net/http"

	"Skillnet/internal/api/handlers"
	"Skillnet/internal/core/users"
)

// Handler serves registration and profile reads
type Handler struct {
	service users.Service
}

// NewHandler creates a new user handler
func NewHandler(service users.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate registers a user
// POST /api/users
//
// Request body: { "firstName": "...", "lastName": "...", "email": "..." }
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req users.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		handlers.WriteServiceError(w, "USER", err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, user)
}

// HandleGet returns a user by id
// GET /api/users/{userId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		handlers.WriteServiceError(w, "USER", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}
