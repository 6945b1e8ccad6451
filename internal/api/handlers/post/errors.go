package post

import (
	"errors"
	"log"
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/core/posts"
)

// handleServiceError converts post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case errors.Is(err, posts.ErrNotAuthorized):
		handlers.WriteError(w, http.StatusUnauthorized, "NotAuthorized", "Only the author may edit this post")
	case errors.Is(err, posts.ErrEmptyContent):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Post content must not be empty")
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
