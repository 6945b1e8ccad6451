package routes

import (
	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/like"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/likes"
)

// RegisterLikeRoutes registers the like/unlike endpoints
func RegisterLikeRoutes(r chi.Router, service likes.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	likeHandler := like.NewLikeHandler(service)
	unlikeHandler := like.NewUnlikeHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/posts/{postID}/like", likeHandler.HandleLike)
	r.With(authMiddleware.RequireAuth).Post("/posts/{postID}/unlike", unlikeHandler.HandleUnlike)
}
