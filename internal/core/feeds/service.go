package feeds

import (
	"context"
	"fmt"
)

type feedService struct {
	repo Repository
}

// NewFeedService creates a new feed service
func NewFeedService(repo Repository) Service {
	return &feedService{
		repo: repo,
	}
}

// GetGlobalFeed returns one page of the all-posts feed
func (s *feedService) GetGlobalFeed(ctx context.Context, viewerID int64, page int) (*Page, error) {
	total, err := s.repo.CountGlobal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	offset, err := pageOffset(page, total)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListGlobal(ctx, viewerID, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return newPage(items, page, total), nil
}

// GetFriendsFeed returns one page of posts by accounts the viewer follows
func (s *feedService) GetFriendsFeed(ctx context.Context, viewerID int64, page int) (*Page, error) {
	if viewerID <= 0 {
		return nil, ErrUnauthenticated
	}

	total, err := s.repo.CountFollowed(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followed posts: %w", err)
	}

	offset, err := pageOffset(page, total)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListFollowed(ctx, viewerID, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed posts: %w", err)
	}

	return newPage(items, page, total), nil
}

// GetAuthorFeed returns one page of a single author's posts
func (s *feedService) GetAuthorFeed(ctx context.Context, authorID, viewerID int64, page int) (*Page, error) {
	total, err := s.repo.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to count author posts: %w", err)
	}

	offset, err := pageOffset(page, total)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListByAuthor(ctx, authorID, viewerID, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}

	return newPage(items, page, total), nil
}
