package routes

import (
	"github.com/go-chi/chi/v5"

	"Skillnet/internal/api/handlers/follow"
	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/follows"
)

// RegisterFollowRoutes registers the follow graph endpoints
func RegisterFollowRoutes(r chi.Router, service follows.Service, authMiddleware *middleware.BearerAuthMiddleware) {
	h := follow.NewHandler(service)

	r.Route("/api/follow", func(r chi.Router) {
		// Mutations act on behalf of the caller
		r.With(authMiddleware.RequireAuth).Post("/", h.HandleFollow)
		r.With(authMiddleware.RequireAuth).Delete("/{userId}", h.HandleUnfollow)

		r.Get("/check", h.HandleCheck)
		r.Get("/{userId}/followers", h.HandleFollowers)
		r.Get("/{userId}/following", h.HandleFollowing)
		r.Get("/{userId}/followers/count", h.HandleFollowerCount)
		r.Get("/{userId}/following/count", h.HandleFollowingCount)
	})
}
