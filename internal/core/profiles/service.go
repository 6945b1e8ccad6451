package profiles

import (
	"context"
	"fmt"

	"Ripple/internal/core/accounts"
	"Ripple/internal/core/feeds"
	"Ripple/internal/core/follows"
)

type profileService struct {
	accounts accounts.Service
	follows  follows.Service
	feeds    feeds.Service
}

// NewProfileService creates a new profile service
func NewProfileService(accountService accounts.Service, followService follows.Service, feedService feeds.Service) Service {
	return &profileService{
		accounts: accountService,
		follows:  followService,
		feeds:    feedService,
	}
}

// GetProfile resolves a username into its profile as seen by the viewer
func (s *profileService) GetProfile(ctx context.Context, viewerID int64, username string, page int) (*Profile, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := s.feeds.GetAuthorFeed(ctx, account.ID, viewerID, page)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.follows.CountFollowers(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count followers: %w", err)
	}

	followingCount, err := s.follows.CountFollowing(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count following: %w", err)
	}

	profile := &Profile{
		Account:        account,
		Posts:          posts,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
	}

	// Follow actions only exist for a logged-in viewer looking at
	// someone else's profile
	if viewerID > 0 && viewerID != account.ID {
		following, err := s.follows.IsFollowing(ctx, viewerID, account.ID)
		if err != nil {
			return nil, err
		}
		profile.CanFollow = !following
		profile.CanUnfollow = following
	}

	return profile, nil
}
