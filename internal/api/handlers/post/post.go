package post

import (
	"encoding/json"
	"net/http"

	"Skillnet/internal/api/handlers"
	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/posts"
)

// Handler serves post endpoints
type Handler struct {
	service posts.Service
}

// NewHandler creates a new post handler
func NewHandler(service posts.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate publishes a post authored by the caller
// POST /api/posts
//
// Request body: { "description": "..." }
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	req.AuthorID = middleware.GetUserID(r)
	if req.AuthorID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	post, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handlers.WriteServiceError(w, "POST", err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, post)
}

// HandleGet returns a single post
// GET /api/posts/{postId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, ok := handlers.PathID(w, r, "postId")
	if !ok {
		return
	}

	post, err := h.service.GetPost(r.Context(), postID)
	if err != nil {
		handlers.WriteServiceError(w, "POST", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}

// HandleListByAuthor lists every post by userId
// GET /api/posts/user/{userId}
func (h *Handler) HandleListByAuthor(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	list, err := h.service.ListByAuthor(r.Context(), userID)
	if err != nil {
		handlers.WriteServiceError(w, "POST", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"posts": list})
}
