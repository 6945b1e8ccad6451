package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	authHandlers "Ripple/internal/api/handlers/auth"
	"Ripple/internal/core/accounts"
)

// RegisterAuthRoutes registers the registration/login/logout endpoints
func RegisterAuthRoutes(r chi.Router, accountService accounts.Service, store sessions.Store) {
	registerHandler := authHandlers.NewRegisterHandler(accountService, store)
	loginHandler := authHandlers.NewLoginHandler(accountService, store)
	logoutHandler := authHandlers.NewLogoutHandler(store)

	r.Post("/register", registerHandler.HandleRegister)
	r.Post("/login", loginHandler.HandleLogin)
	r.Post("/logout", logoutHandler.HandleLogout)
}
