package routes

import (
	"github.com/go-chi/chi/v5"

	"Skillnet/internal/api/handlers/user"
	"Skillnet/internal/core/users"
)

// RegisterUserRoutes registers registration and profile endpoints
func RegisterUserRoutes(r chi.Router, service users.Service) {
	h := user.NewHandler(service)

	r.Post("/api/users", h.HandleCreate)
	r.Get("/api/users/{userId}", h.HandleGet)
}
