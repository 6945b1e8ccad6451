package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/accounts"
)

// RegisterHandler handles account registration
type RegisterHandler struct {
	service accounts.Service
	store   sessions.Store
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(service accounts.Service, store sessions.Store) *RegisterHandler {
	return &RegisterHandler{
		service: service,
		store:   store,
	}
}

// HandleRegister creates an account and logs it in
// POST /register (form fields: username, email, password, confirmation)
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid form body")
		return
	}

	password := r.PostFormValue("password")
	confirmation := r.PostFormValue("confirmation")
	if password != confirmation {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Passwords must match")
		return
	}

	account, err := h.service.Register(r.Context(), accounts.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: password,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// New accounts are logged in immediately
	if err := middleware.Login(w, r, h.store, account.ID); err != nil {
		log.Printf("Failed to create session after registration: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to create session")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleServiceError converts account service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *accounts.ValidationError
	switch {
	case errors.Is(err, accounts.ErrUsernameTaken):
		handlers.WriteError(w, http.StatusConflict, "UsernameTaken", "Username already taken")
	case errors.Is(err, accounts.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid username and/or password")
	case errors.As(err, &validationErr):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", validationErr.Message)
	default:
		log.Printf("Account handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
