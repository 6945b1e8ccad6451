package auth

import (
	"log"
	"net/http"

	"github.com/gorilla/sessions"

	"Ripple/internal/api/middleware"
)

// LogoutHandler handles session logout
type LogoutHandler struct {
	store sessions.Store
}

// NewLogoutHandler creates a new logout handler
func NewLogoutHandler(store sessions.Store) *LogoutHandler {
	return &LogoutHandler{
		store: store,
	}
}

// HandleLogout expires the session and returns to the feed
// POST /logout
func (h *LogoutHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := middleware.Logout(w, r, h.store); err != nil {
		// An unsaveable session is still a logout from the user's view
		log.Printf("Failed to expire session: %v", err)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
