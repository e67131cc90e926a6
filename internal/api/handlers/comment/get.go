package comment

import (
	"net/http"

	"Skillnet/internal/api/handlers"
)

// HandleGet returns a single comment
// GET /api/comments/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	comment, err := h.service.GetComment(r.Context(), id)
	if err != nil {
		handlers.WriteServiceError(w, "COMMENT", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, comment)
}

// HandleListByPost lists a post's comments oldest first
// GET /api/comments/post/{postId}
func (h *Handler) HandleListByPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PathID(w, r, "postId")
	if !ok {
		return
	}

	list, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		handlers.WriteServiceError(w, "COMMENT", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"comments": list})
}

// HandleListByUser lists a user's comments oldest first
// GET /api/comments/user/{userId}
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	list, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		handlers.WriteServiceError(w, "COMMENT", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"comments": list})
}
