package feed

import (
	"net/http"

	"Skillnet/internal/api/handlers"
	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/feed"
)

// Handler serves the activity feed
type Handler struct {
	service feed.Service
}

// NewHandler creates a new feed handler
func NewHandler(service feed.Service) *Handler {
	return &Handler{service: service}
}

// HandleOwnFeed composes the caller's feed
// GET /api/feed
func (h *Handler) HandleOwnFeed(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}
	h.write(w, r, userID)
}

// HandleUserFeed composes the feed of userId
// GET /api/feed/{userId}
func (h *Handler) HandleUserFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}
	h.write(w, r, userID)
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, userID int64) {
	list, err := h.service.Compose(r.Context(), userID)
	if err != nil {
		handlers.WriteServiceError(w, "FEED", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"feed": list})
}
