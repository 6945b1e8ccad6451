package posts

import (
	"context"
	"strings"
)

type postService struct {
	repo Repository
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{
		repo: repo,
	}
}

// Create publishes a new post authored by the given account
func (s *postService) Create(ctx context.Context, authorID int64, content string) (*Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	post := &Post{
		Content:  content,
		AuthorID: authorID,
	}

	return s.repo.Create(ctx, post)
}

// Edit replaces the content of an existing post.
// Validation order: existence, then ownership, then content — nothing is
// written until every check has passed.
func (s *postService) Edit(ctx context.Context, editorID, postID int64, content string) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// Ownership is account id equality, not object identity
	if post.AuthorID != editorID {
		return nil, ErrNotAuthorized
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	return s.repo.UpdateContent(ctx, postID, content)
}

// GetByID retrieves a post by its id
func (s *postService) GetByID(ctx context.Context, id int64) (*Post, error) {
	if id <= 0 {
		return nil, ErrPostNotFound
	}

	return s.repo.GetByID(ctx, id)
}
