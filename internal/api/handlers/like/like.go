package like

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/likes"
)

// LikeHandler handles like creation
type LikeHandler struct {
	service likes.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service likes.Service) *LikeHandler {
	return &LikeHandler{
		service: service,
	}
}

// HandleLike likes a post and returns its updated like state
// POST /posts/{postID}/like
//
// Response body: { "postId": 1, "likeCount": 3, "liked": true }
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
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

	state, err := h.service.Like(r.Context(), accountID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeLikeState(w, state)
}

// writeLikeState writes the like fragment shared by like and unlike
func writeLikeState(w http.ResponseWriter, state *likes.LikeState) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(state); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
