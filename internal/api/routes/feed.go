package routes

import (
	"github.com/go-chi/chi/v5"

	"Skillnet/internal/api/handlers/feed"
	"Skillnet/internal/api/middleware"
	corefeed "Skillnet/internal/core/feed"
)

// RegisterFeedRoutes registers the feed endpoints
func RegisterFeedRoutes(r chi.Router, service corefeed.Service, authMiddleware *middleware.BearerAuthMiddleware) {
	h := feed.NewHandler(service)

	r.With(authMiddleware.RequireAuth).Get("/api/feed", h.HandleOwnFeed)
	r.Get("/api/feed/{userId}", h.HandleUserFeed)
}
