package routes

import (
	"github.com/go-chi/chi/v5"

	"Skillnet/internal/api/handlers/comment"
	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints
func RegisterCommentRoutes(r chi.Router, service comments.Service, authMiddleware *middleware.BearerAuthMiddleware) {
	h := comment.NewHandler(service)

	r.Route("/api/comments", func(r chi.Router) {
		r.With(authMiddleware.RequireAuth).Post("/", h.HandleCreate)
		r.With(authMiddleware.RequireAuth).Put("/{id}", h.HandleUpdate)
		r.With(authMiddleware.RequireAuth).Delete("/{id}", h.HandleDelete)

		r.Get("/{id}", h.HandleGet)
		r.Get("/post/{postId}", h.HandleListByPost)
		r.Get("/user/{userId}", h.HandleListByUser)
	})
}
