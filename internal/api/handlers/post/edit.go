package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/handlers"
	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// EditPostHandler handles post content edits
type EditPostHandler struct {
	service posts.Service
}

// NewEditPostHandler creates a new edit post handler
func NewEditPostHandler(service posts.Service) *EditPostHandler {
	return &EditPostHandler{
		service: service,
	}
}

// editRequest is the JSON body of an edit
type editRequest struct {
	Content string `json:"content"`
}

// HandleEditPost replaces a post's content
// PUT /posts/{postID}/edit
//
// Request body: { "content": "..." }
// Response body: { "content": "..." } — the content after updating, which
// is all the frontend needs
func (h *EditPostHandler) HandleEditPost(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.GetAccountID(r)
	if accountID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		// Non-numeric ids can't name a post
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	post, err := h.service.Edit(r.Context(), accountID, postID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"content": post.Content,
	}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
