package comment

import (
	"encoding/json"
	"net/http"

	"Skillnet/internal/api/handlers"
	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/comments"
)

// Handler serves comment endpoints
type Handler struct {
	service comments.Service
}

// NewHandler creates a new comment handler
func NewHandler(service comments.Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate comments on a post as the caller
// POST /api/comments
//
// Request body: { "postId": 1, "content": "..." }
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.PostID <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "postId is required")
		return
	}

	req.UserID = middleware.GetUserID(r)
	if req.UserID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	comment, err := h.service.CreateComment(r.Context(), req)
	if err != nil {
		handlers.WriteServiceError(w, "COMMENT", err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}

// HandleUpdate edits a comment's text
// PUT /api/comments/{id}
//
// Request body: { "content": "..." }
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	var req comments.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	req.ID = id

	comment, err := h.service.UpdateComment(r.Context(), req)
	if err != nil {
		handlers.WriteServiceError(w, "COMMENT", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, comment)
}

// HandleDelete removes a comment
// DELETE /api/comments/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteComment(r.Context(), id); err != nil {
		handlers.WriteServiceError(w, "COMMENT", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
