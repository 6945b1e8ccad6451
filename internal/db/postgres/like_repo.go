package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Ripple/internal/core/likes"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Create inserts the (account, post) edge
func (r *postgresLikeRepo) Create(ctx context.Context, accountID, postID int64) error {
	query := `
		INSERT INTO likes (account_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (account_id, post_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, accountID, postID)
	if err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return likes.ErrAlreadyLiked
	}

	return nil
}

// Delete removes the (account, post) edge
func (r *postgresLikeRepo) Delete(ctx context.Context, accountID, postID int64) error {
	query := `DELETE FROM likes WHERE account_id = $1 AND post_id = $2`

	result, err := r.db.ExecContext(ctx, query, accountID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return likes.ErrNotLiked
	}

	return nil
}

// Exists reports whether the (account, post) edge exists
func (r *postgresLikeRepo) Exists(ctx context.Context, accountID, postID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE account_id = $1 AND post_id = $2)`

	err := r.db.QueryRowContext(ctx, query, accountID, postID).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}

	return exists, nil
}

// Count counts likes on a post
func (r *postgresLikeRepo) Count(ctx context.Context, postID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM likes WHERE post_id = $1`

	if err := r.db.QueryRowContext(ctx, query, postID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return count, nil
}
