package notification

import (
	"context"
	"net/http"

	"Skillnet/internal/api/handlers"
	"Skillnet/internal/core/notifications"
)

// Handler serves the notification outbox
type Handler struct {
	service notifications.Service
}

// NewHandler creates a new notification handler
func NewHandler(service notifications.Service) *Handler {
	return &Handler{service: service}
}

// HandleGet returns a single notification
// GET /api/notifications/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	n, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handlers.WriteServiceError(w, "NOTIFY", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, n)
}

// HandleListByUser lists every notification of userId, newest first
// GET /api/notifications/user/{userId}
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.service.ListByUser)
}

// HandleListUnread lists the unread notifications of userId, newest first
// GET /api/notifications/user/{userId}/unread
func (h *Handler) HandleListUnread(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, h.service.ListUnreadByUser)
}

// HandleMarkRead marks one notification as read
// PUT /api/notifications/{id}/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		handlers.WriteServiceError(w, "NOTIFY", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMarkAllRead marks every unread notification of userId as read
// PUT /api/notifications/user/{userId}/read-all
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	h.writeAffected(w, r, "updated", h.service.MarkAllRead)
}

// HandleDelete removes one notification
// DELETE /api/notifications/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlers.PathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handlers.WriteServiceError(w, "NOTIFY", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteAll removes every notification of userId
// DELETE /api/notifications/user/{userId}
func (h *Handler) HandleDeleteAll(w http.ResponseWriter, r *http.Request) {
	h.writeAffected(w, r, "deleted", h.service.DeleteAllForUser)
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, list func(context.Context, int64) ([]*notifications.Notification, error)) {
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	items, err := list(r.Context(), userID)
	if err != nil {
		handlers.WriteServiceError(w, "NOTIFY", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{"notifications": items})
}

func (h *Handler) writeAffected(w http.ResponseWriter, r *http.Request, field string, op func(context.Context, int64) (int64, error)) {
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	n, err := op(r.Context(), userID)
	if err != nil {
		handlers.WriteServiceError(w, "NOTIFY", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{field: n})
}
