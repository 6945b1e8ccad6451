package posts

import "context"

// Service defines the business logic interface for posts
type Service interface {
	// Create publishes a new post authored by the given account
	// Both timestamps are set to the creation time
	Create(ctx context.Context, authorID int64, content string) (*Post, error)

	// Edit replaces the content of an existing post and refreshes updated_at
	// Only the post's author may edit it; created_at is never touched
	Edit(ctx context.Context, editorID, postID int64, content string) (*Post, error)

	// GetByID retrieves a post by its id
	GetByID(ctx context.Context, id int64) (*Post, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and returns it with id and timestamps set
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID retrieves a post by id, ErrPostNotFound when absent
	GetByID(ctx context.Context, id int64) (*Post, error)

	// UpdateContent replaces a post's content and refreshes updated_at,
	// returning the updated row
	UpdateContent(ctx context.Context, postID int64, content string) (*Post, error)
}
