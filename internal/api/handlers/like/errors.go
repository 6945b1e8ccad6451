package like

import (
	"errors"
	"log"
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/core/likes"
	"Ripple/internal/core/posts"
)

// handleServiceError converts like service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, likes.ErrAlreadyLiked):
		handlers.WriteError(w, http.StatusBadRequest, "AlreadyLiked", "Post already liked")
	case errors.Is(err, likes.ErrNotLiked):
		handlers.WriteError(w, http.StatusBadRequest, "NotLiked", "Post not liked yet")
	default:
		log.Printf("Like handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
