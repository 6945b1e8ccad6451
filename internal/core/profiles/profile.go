package profiles

import (
	"context"

	"Ripple/internal/core/accounts"
	"Ripple/internal/core/feeds"
)

// Profile is an account's public page: the account, one page of its
// posts, follow counts, and what follow action the viewer may take
type Profile struct {
	Account        *accounts.Account `json:"account"`
	Posts          *feeds.Page       `json:"posts"`
	FollowerCount  int               `json:"followerCount"`
	FollowingCount int               `json:"followingCount"`
	CanFollow      bool              `json:"canFollow"`
	CanUnfollow    bool              `json:"canUnfollow"`
}

// Service defines the profile resolver interface
type Service interface {
	// GetProfile resolves a username into its profile as seen by the
	// viewer (viewerID <= 0 for anonymous). Fails with
	// accounts.ErrAccountNotFound or feeds.ErrPageNotFound.
	GetProfile(ctx context.Context, viewerID int64, username string, page int) (*Profile, error)
}
