package routes

import (
	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/follow"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/follows"
)

// RegisterFollowRoutes registers the follow/unfollow endpoints
func RegisterFollowRoutes(r chi.Router, service follows.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	followHandler := follow.NewFollowHandler(service)
	unfollowHandler := follow.NewUnfollowHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/u/{username}/follow", followHandler.HandleFollow)
	r.With(authMiddleware.RequireAuth).Post("/u/{username}/unfollow", unfollowHandler.HandleUnfollow)
}
