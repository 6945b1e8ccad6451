package post

import (
	"net/http"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// CreatePostHandler handles post creation
type CreatePostHandler struct {
	service posts.Service
}

// NewCreatePostHandler creates a new create post handler
func NewCreatePostHandler(service posts.Service) *CreatePostHandler {
	return &CreatePostHandler{
		service: service,
	}
}

// HandleCreatePost publishes a new post and returns to the feed
// POST /posts/create (form field: content)
func (h *CreatePostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r)
	if accountID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := r.ParseForm(); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid form body")
		return
	}

	if _, err := h.service.Create(r.Context(), accountID, r.PostFormValue("content")); err != nil {
		handleServiceError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
