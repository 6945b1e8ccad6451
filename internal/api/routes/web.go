package routes

import (
	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/middleware"
	"Ripple/internal/web"
)

// RegisterWebRoutes registers the HTML page routes: the two feeds,
// profiles, and the login/register forms. Profiles live under /u/ so a
// username can never shadow a fixed path.
func RegisterWebRoutes(r chi.Router, handlers *web.Handlers, authMiddleware *middleware.SessionAuthMiddleware) {
	r.With(authMiddleware.OptionalAuth).Get("/", handlers.FeedHandler)
	r.With(authMiddleware.RequireAuth).Get("/following", handlers.FollowingHandler)
	r.With(authMiddleware.OptionalAuth).Get("/u/{username}", handlers.ProfileHandler)

	r.Get("/login", handlers.LoginPageHandler)
	r.Get("/register", handlers.RegisterPageHandler)
}
