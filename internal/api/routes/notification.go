package routes

import (
	"github.com/go-chi/chi/v5"

	"Skillnet/internal/api/handlers/notification"
	"Skillnet/internal/core/notifications"
)

// RegisterNotificationRoutes registers the notification outbox endpoints
func RegisterNotificationRoutes(r chi.Router, service notifications.Service) {
	h := notification.NewHandler(service)

	r.Route("/api/notifications", func(r chi.Router) {
		r.Get("/{id}", h.HandleGet)
		r.Put("/{id}/read", h.HandleMarkRead)
		r.Delete("/{id}", h.HandleDelete)

		r.Get("/user/{userId}", h.HandleListByUser)
		r.Get("/user/{userId}/unread", h.HandleListUnread)
		r.Put("/user/{userId}/read-all", h.HandleMarkAllRead)
		r.Delete("/user/{userId}", h.HandleDeleteAll)
	})
}
