package follows

import (
	"context"
	"fmt"

	"Ripple/internal/core/accounts"
)

type followService struct {
	repo     Repository
	accounts accounts.Service
}

// NewFollowService creates a new follow service
func NewFollowService(repo Repository, accountService accounts.Service) Service {
	return &followService{
		repo:     repo,
		accounts: accountService,
	}
}

// Follow creates a follow edge from the follower to the named account
func (s *followService) Follow(ctx context.Context, followerID int64, followeeUsername string) (*accounts.Account, error) {
	target, err := s.accounts.GetByUsername(ctx, followeeUsername)
	if err != nil {
		return nil, err
	}

	if target.ID == followerID {
		return nil, ErrSelfFollow
	}

	// The pair-unique constraint makes the duplicate check and the insert
	// a single atomic statement
	if err := s.repo.Create(ctx, followerID, target.ID); err != nil {
		return nil, err
	}

	return target, nil
}

// Unfollow removes the follow edge to the named account
func (s *followService) Unfollow(ctx context.Context, followerID int64, followeeUsername string) (*accounts.Account, error) {
	target, err := s.accounts.GetByUsername(ctx, followeeUsername)
	if err != nil {
		return nil, err
	}

	if target.ID == followerID {
		return nil, ErrSelfFollow
	}

	if err := s.repo.Delete(ctx, followerID, target.ID); err != nil {
		return nil, err
	}

	return target, nil
}

// IsFollowing reports whether follower currently follows followee
func (s *followService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if followerID <= 0 || followeeID <= 0 || followerID == followeeID {
		return false, nil
	}

	following, err := s.repo.Exists(ctx, followerID, followeeID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow state: %w", err)
	}

	return following, nil
}

// CountFollowers returns how many accounts follow the given account
func (s *followService) CountFollowers(ctx context.Context, accountID int64) (int, error) {
	return s.repo.CountFollowers(ctx, accountID)
}

// CountFollowing returns how many accounts the given account follows
func (s *followService) CountFollowing(ctx context.Context, accountID int64) (int, error) {
	return s.repo.CountFollowing(ctx, accountID)
}
