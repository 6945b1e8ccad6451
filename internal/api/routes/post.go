package routes

import (
	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers/post"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// RegisterPostRoutes registers the post mutation endpoints.
// chi's method routing answers 405 for any other verb on these paths, so
// a GET against /posts/create is rejected before it reaches a handler.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.SessionAuthMiddleware) {
	createHandler := post.NewCreatePostHandler(service)
	editHandler := post.NewEditPostHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/posts/create", createHandler.HandleCreatePost)
	r.With(authMiddleware.RequireAuth).Put("/posts/{postID}/edit", editHandler.HandleEditPost)
}
