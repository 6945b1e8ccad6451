package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"Ripple/internal/core/feeds"
)

type postgresFeedRepo struct {
	db *sql.DB
}

// NewFeedRepository creates a new PostgreSQL feed repository
func NewFeedRepository(db *sql.DB) feeds.Repository {
	return &postgresFeedRepo{db: db}
}

// postViewColumns is the hydrated select list shared by every feed query.
// Like count and viewer state come from scalar subqueries over the likes
// relation; $1 is always the viewer id (0 for anonymous).
const postViewColumns = `
	p.id, p.content, p.created_at, p.updated_at,
	p.author_id, a.username,
	(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
	EXISTS(SELECT 1 FROM likes l WHERE l.post_id = p.id AND l.account_id = $1) AS viewer_has_liked`

// feedOrdering keeps every listing strictly newest-first; the id tiebreak
// makes the order total even for equal timestamps
const feedOrdering = ` ORDER BY p.created_at DESC, p.id DESC LIMIT $2 OFFSET $3`

// CountGlobal counts all posts
func (r *postgresFeedRepo) CountGlobal(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// ListGlobal lists all posts newest-first
func (r *postgresFeedRepo) ListGlobal(ctx context.Context, viewerID int64, limit, offset int) ([]*feeds.PostView, error) {
	query := `
		SELECT` + postViewColumns + `
		FROM posts p
		JOIN accounts a ON a.id = p.author_id` + feedOrdering

	return r.queryPostViews(ctx, query, viewerID, limit, offset)
}

// CountFollowed counts posts authored by accounts the viewer follows
func (r *postgresFeedRepo) CountFollowed(ctx context.Context, followerID int64) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM posts p
		JOIN follows f ON f.followee_id = p.author_id
		WHERE f.follower_id = $1`

	if err := r.db.QueryRowContext(ctx, query, followerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count followed posts: %w", err)
	}
	return count, nil
}

// ListFollowed lists posts authored by accounts the viewer follows.
// The friends feed and the viewer like state share the same $1, so the
// follower is always the viewer here.
func (r *postgresFeedRepo) ListFollowed(ctx context.Context, followerID int64, limit, offset int) ([]*feeds.PostView, error) {
	query := `
		SELECT` + postViewColumns + `
		FROM posts p
		JOIN accounts a ON a.id = p.author_id
		JOIN follows f ON f.followee_id = p.author_id AND f.follower_id = $1` + feedOrdering

	return r.queryPostViews(ctx, query, followerID, limit, offset)
}

// CountByAuthor counts posts by a single author
func (r *postgresFeedRepo) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	if err := r.db.QueryRowContext(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count author posts: %w", err)
	}
	return count, nil
}

// ListByAuthor lists a single author's posts newest-first
func (r *postgresFeedRepo) ListByAuthor(ctx context.Context, authorID, viewerID int64, limit, offset int) ([]*feeds.PostView, error) {
	query := `
		SELECT` + postViewColumns + `
		FROM posts p
		JOIN accounts a ON a.id = p.author_id
		WHERE p.author_id = $4` + feedOrdering

	rows, err := r.db.QueryContext(ctx, query, viewerID, limit, offset, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query author posts: %w", err)
	}
	return scanPostViews(rows)
}

func (r *postgresFeedRepo) queryPostViews(ctx context.Context, query string, viewerID int64, limit, offset int) ([]*feeds.PostView, error) {
	rows, err := r.db.QueryContext(ctx, query, viewerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed: %w", err)
	}
	return scanPostViews(rows)
}

func scanPostViews(rows *sql.Rows) ([]*feeds.PostView, error) {
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var views []*feeds.PostView
	for rows.Next() {
		view := &feeds.PostView{}
		err := rows.Scan(&view.ID, &view.Content, &view.CreatedAt, &view.UpdatedAt,
			&view.AuthorID, &view.AuthorUsername, &view.LikeCount, &view.ViewerHasLiked)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post view: %w", err)
		}
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed rows: %w", err)
	}

	return views, nil
}
