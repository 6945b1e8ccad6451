package follow

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/follows"
)

// UnfollowHandler handles follow removal
type UnfollowHandler struct {
	service follows.Service
}

// NewUnfollowHandler creates a new unfollow handler
func NewUnfollowHandler(service follows.Service) *UnfollowHandler {
	return &UnfollowHandler{
		service: service,
	}
}

// HandleUnfollow unfollows the named account and returns to its profile
// POST /u/{username}/unfollow
func (h *UnfollowHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r)
	if accountID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	target, err := h.service.Unfollow(r.Context(), accountID, chi.URLParam(r, "username"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	http.Redirect(w, r, "/u/"+url.PathEscape(target.Username), http.StatusSeeOther)
}
