package routes

import (
	"github.com/go-chi/chi/v5"

	"Skillnet/internal/api/handlers/like"
	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/likes"
)

// RegisterLikeRoutes registers like endpoints
func RegisterLikeRoutes(r chi.Router, service likes.Service, authMiddleware *middleware.BearerAuthMiddleware) {
	h := like.NewHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/likes/{postId}", h.HandleLike)
	r.With(authMiddleware.RequireAuth).Delete("/api/likes/{postId}", h.HandleUnlike)
	r.Get("/api/likes/{postId}", h.HandleList)
}
