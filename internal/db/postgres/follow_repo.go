package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Ripple/internal/core/follows"
)

type postgresFollowRepo struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow repository.
// The follows table is the single directed edge relation; friends and
// followers are both read out of it, so there is no second side to keep
// in sync.
func NewFollowRepository(db *sql.DB) follows.Repository {
	return &postgresFollowRepo{db: db}
}

// Create inserts the (follower, followee) edge
// The primary key on the pair makes duplicate detection and insertion one
// atomic statement
func (r *postgresFollowRepo) Create(ctx context.Context, followerID, followeeID int64) error {
	query := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("failed to create follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return follows.ErrAlreadyFollowing
	}

	return nil
}

// Delete removes the (follower, followee) edge
func (r *postgresFollowRepo) Delete(ctx context.Context, followerID, followeeID int64) error {
	query := `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`

	result, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return follows.ErrNotFollowing
	}

	return nil
}

// Exists reports whether the (follower, followee) edge exists
func (r *postgresFollowRepo) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`

	err := r.db.QueryRowContext(ctx, query, followerID, followeeID).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check follow existence: %w", err)
	}

	return exists, nil
}

// CountFollowers counts incoming edges for an account
func (r *postgresFollowRepo) CountFollowers(ctx context.Context, accountID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM follows WHERE followee_id = $1`

	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}

	return count, nil
}

// CountFollowing counts outgoing edges for an account
func (r *postgresFollowRepo) CountFollowing(ctx context.Context, accountID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1`

	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}

	return count, nil
}
