package follow

import (
	"errors"
	"log"
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/core/accounts"
	"Ripple/internal/core/follows"
)

// handleServiceError converts follow service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounts.ErrAccountNotFound):
		handlers.WriteError(w, http.StatusNotFound, "AccountNotFound", "Account not found")
	case errors.Is(err, follows.ErrSelfFollow):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidOperation", "Can't follow yourself")
	case errors.Is(err, follows.ErrAlreadyFollowing):
		handlers.WriteError(w, http.StatusBadRequest, "AlreadyFollowing", "Already following this account")
	case errors.Is(err, follows.ErrNotFollowing):
		handlers.WriteError(w, http.StatusBadRequest, "NotFollowing", "Not following this account")
	default:
		log.Printf("Follow handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
