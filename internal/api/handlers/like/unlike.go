package like

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/likes"
)

// UnlikeHandler handles like removal
type UnlikeHandler struct {
	service likes.Service
}

// NewUnlikeHandler creates a new unlike handler
func NewUnlikeHandler(service likes.Service) *UnlikeHandler {
	return &UnlikeHandler{
		service: service,
	}
}

// HandleUnlike removes a like and returns the post's updated like state
// POST /posts/{postID}/unlike
func (h *UnlikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r)
	if accountID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
		return
	}

	state, err := h.service.Unlike(r.Context(), accountID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeLikeState(w, state)
}
