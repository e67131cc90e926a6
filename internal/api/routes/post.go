package routes

import (
	"github.com/go-chi/chi/v5"

	"Skillnet/internal/api/handlers/post"
	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.BearerAuthMiddleware) {
	h := post.NewHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/posts", h.HandleCreate)
	r.Get("/api/posts/{postId}", h.HandleGet)
	r.Get("/api/posts/user/{userId}", h.HandleListByAuthor)
}
