package like

import (
	"log"
	"net/http"

	"Skillnet/internal/api/handlers"
	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/likes"
)

// Handler serves like endpoints
type Handler struct {
	service likes.Service
}

// NewHandler creates a new like handler
func NewHandler(service likes.Service) *Handler {
	return &Handler{service: service}
}

// HandleLike likes postId as the caller. Liking twice returns the existing
// like with 200 instead of 201 and sends no second notification.
// POST /api/likes/{postId}
func (h *Handler) HandleLike(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PathID(w, r, "postId")
	if !ok {
		return
	}
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	like, created, err := h.service.Like(r.Context(), userID, postID)
	if err != nil {
		handlers.WriteServiceError(w, "LIKE", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	} else {
		log.Printf("[LIKE] user %d already liked post %d", userID, postID)
	}
	handlers.WriteJSON(w, status, map[string]interface{}{
		"like":    like,
		"created": created,
	})
}

// HandleUnlike removes the caller's like
// DELETE /api/likes/{postId}
func (h *Handler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PathID(w, r, "postId")
	if !ok {
		return
	}
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Unlike(r.Context(), userID, postID); err != nil {
		handlers.WriteServiceError(w, "LIKE", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleList lists the likes on postId
// GET /api/likes/{postId}
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PathID(w, r, "postId")
	if !ok {
		return
	}

	list, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		handlers.WriteServiceError(w, "LIKE", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"likes": list,
		"count": len(list),
	})
}
