package routes

import (
	"github.com/go-chi/chi/v5"

	"Skillnet/internal/api/middleware"
)

// RegisterRequestMiddleware installs the per-request identity and rate limit
// stack. It must be called before any routes are registered on r.
func RegisterRequestMiddleware(r chi.Router, authMiddleware *middleware.BearerAuthMiddleware, limiter middleware.Limiter, trustProxy bool) {
	// Identity first so the limiter can key callers by user id
	r.Use(authMiddleware.OptionalAuth)
	r.Use(middleware.RateLimit(limiter, trustProxy))
}
