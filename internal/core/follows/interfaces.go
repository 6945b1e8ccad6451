package follows

import (
	"context"

	"Ripple/internal/core/accounts"
)

// Service defines the business logic interface for follow relationships
type Service interface {
	// Follow creates a follow edge from the follower to the named account.
	// Validation order: target exists, target isn't the follower, edge
	// doesn't already exist. Returns the target account on success so the
	// caller can redirect to its profile.
	Follow(ctx context.Context, followerID int64, followeeUsername string) (*accounts.Account, error)

	// Unfollow removes the follow edge to the named account.
	// Same validation ladder as Follow; ErrNotFollowing when no edge exists.
	Unfollow(ctx context.Context, followerID int64, followeeUsername string) (*accounts.Account, error)

	// IsFollowing reports whether follower currently follows followee
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)

	// CountFollowers returns how many accounts follow the given account
	CountFollowers(ctx context.Context, accountID int64) (int, error)

	// CountFollowing returns how many accounts the given account follows
	CountFollowing(ctx context.Context, accountID int64) (int, error)
}

// Repository defines the data access interface for the follow edge set
type Repository interface {
	// Create inserts the (follower, followee) edge.
	// Returns ErrAlreadyFollowing if the edge exists.
	Create(ctx context.Context, followerID, followeeID int64) error

	// Delete removes the (follower, followee) edge.
	// Returns ErrNotFollowing if no edge exists.
	Delete(ctx context.Context, followerID, followeeID int64) error

	// Exists reports whether the (follower, followee) edge exists
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)

	// CountFollowers counts incoming edges for an account
	CountFollowers(ctx context.Context, accountID int64) (int, error)

	// CountFollowing counts outgoing edges for an account
	CountFollowing(ctx context.Context, accountID int64) (int, error)
}
