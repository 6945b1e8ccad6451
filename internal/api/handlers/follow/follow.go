package follow

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/follows"
)

// FollowHandler handles follow creation
type FollowHandler struct {
	service follows.Service
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(service follows.Service) *FollowHandler {
	return &FollowHandler{
		service: service,
	}
}

// HandleFollow follows the named account and returns to its profile
// POST /u/{username}/follow
func (h *FollowHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r)
	if accountID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	target, err := h.service.Follow(r.Context(), accountID, chi.URLParam(r, "username"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	http.Redirect(w, r, "/u/"+url.PathEscape(target.Username), http.StatusSeeOther)
}
