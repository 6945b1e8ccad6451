package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Ripple/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (content, author_id)
		VALUES ($1, $2)
		RETURNING id, content, author_id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, post.Content, post.AuthorID).
		Scan(&post.ID, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post by id
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	post := &posts.Post{}
	query := `SELECT id, content, author_id, created_at, updated_at FROM posts WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// UpdateContent replaces a post's content and refreshes updated_at.
// created_at is deliberately not in the SET list; it never changes.
func (r *postgresPostRepo) UpdateContent(ctx context.Context, postID int64, content string) (*posts.Post, error) {
	post := &posts.Post{}
	query := `
		UPDATE posts
		SET content = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, content, author_id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, postID, content).
		Scan(&post.ID, &post.Content, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post content: %w", err)
	}

	return post, nil
}
