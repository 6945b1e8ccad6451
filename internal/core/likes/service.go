package likes

import (
	"context"
	"fmt"

	"Ripple/internal/core/posts"
)

type likeService struct {
	repo  Repository
	posts posts.Service
}

// NewLikeService creates a new like service
func NewLikeService(repo Repository, postService posts.Service) Service {
	return &likeService{
		repo:  repo,
		posts: postService,
	}
}

// Like records that the account likes the post
func (s *likeService) Like(ctx context.Context, accountID, postID int64) (*LikeState, error) {
	// Validate the subject exists before creating the edge
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, accountID, postID); err != nil {
		return nil, err
	}

	return s.state(ctx, postID, true)
}

// Unlike removes the account's like from the post
func (s *likeService) Unlike(ctx context.Context, accountID, postID int64) (*LikeState, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, accountID, postID); err != nil {
		return nil, err
	}

	return s.state(ctx, postID, false)
}

// HasLiked reports whether the account currently likes the post
func (s *likeService) HasLiked(ctx context.Context, accountID, postID int64) (bool, error) {
	if accountID <= 0 {
		return false, nil
	}

	return s.repo.Exists(ctx, accountID, postID)
}

// Count returns how many accounts like the post
func (s *likeService) Count(ctx context.Context, postID int64) (int, error) {
	return s.repo.Count(ctx, postID)
}

func (s *likeService) state(ctx context.Context, postID int64, liked bool) (*LikeState, error) {
	count, err := s.repo.Count(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	return &LikeState{
		PostID:    postID,
		LikeCount: count,
		Liked:     liked,
	}, nil
}
