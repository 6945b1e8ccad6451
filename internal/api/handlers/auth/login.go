package auth

import (
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/accounts"
)

// LoginHandler handles session login
type LoginHandler struct {
	service accounts.Service
	store   sessions.Store
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service accounts.Service, store sessions.Store) *LoginHandler {
	return &LoginHandler{
		service: service,
		store:   store,
	}
}

// HandleLogin verifies credentials and opens a session
// POST /login (form fields: username, password)
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid form body")
		return
	}

	account, err := h.service.Authenticate(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := middleware.Login(w, r, h.store, account.ID); err != nil {
		log.Printf("Failed to create session: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to create session")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
