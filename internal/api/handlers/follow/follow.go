package follow

import (
	"encoding/json"
	"log"
	"net/http"

	"Skillnet/internal/api/handlers"
	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/follows"
)

// Handler serves the follow graph endpoints
type Handler struct {
	service follows.Service
}

// NewHandler creates a new follow handler
func NewHandler(service follows.Service) *Handler {
	return &Handler{service: service}
}

// HandleFollow makes the caller follow another user
// POST /api/follow
//
// Request body: { "followeeId": 42 }
func (h *Handler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	var req follows.FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.FolloweeID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "followeeId is required")
		return
	}

	req.FollowerID = middleware.GetUserID(r)
	if req.FollowerID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	edge, err := h.service.Follow(r.Context(), req.FollowerID, req.FolloweeID)
	if err != nil {
		handlers.WriteServiceError(w, "FOLLOW", err)
		return
	}

	log.Printf("[FOLLOW] user %d now follows %d", req.FollowerID, req.FolloweeID)
	handlers.WriteJSON(w, http.StatusCreated, edge)
}

// HandleUnfollow removes the caller's edge to userId
// DELETE /api/follow/{userId}
func (h *Handler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	followeeID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	followerID := middleware.GetUserID(r)
	if followerID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Unfollow(r.Context(), followerID, followeeID); err != nil {
		handlers.WriteServiceError(w, "FOLLOW", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
