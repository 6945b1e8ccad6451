package likes

import "context"

// Service defines the business logic interface for post likes
type Service interface {
	// Like records that the account likes the post.
	// Fails with posts.ErrPostNotFound when the post is absent and
	// ErrAlreadyLiked on a duplicate. Returns the post's updated like state.
	Like(ctx context.Context, accountID, postID int64) (*LikeState, error)

	// Unlike removes the account's like from the post.
	// Fails with ErrNotLiked when no like exists.
	Unlike(ctx context.Context, accountID, postID int64) (*LikeState, error)

	// HasLiked reports whether the account currently likes the post
	HasLiked(ctx context.Context, accountID, postID int64) (bool, error)

	// Count returns how many accounts like the post
	Count(ctx context.Context, postID int64) (int, error)
}

// Repository defines the data access interface for the like edge set
type Repository interface {
	// Create inserts the (account, post) edge.
	// Returns ErrAlreadyLiked if the edge exists.
	Create(ctx context.Context, accountID, postID int64) error

	// Delete removes the (account, post) edge.
	// Returns ErrNotLiked if no edge exists.
	Delete(ctx context.Context, accountID, postID int64) error

	// Exists reports whether the (account, post) edge exists
	Exists(ctx context.Context, accountID, postID int64) (bool, error)

	// Count counts likes on a post
	Count(ctx context.Context, postID int64) (int, error)
}
