package follows

import "errors"

var (
	// ErrSelfFollow indicates an account tried to follow or unfollow itself
	ErrSelfFollow = errors.New("can't follow yourself")

	// ErrAlreadyFollowing indicates the follow edge already exists
	ErrAlreadyFollowing = errors.New("already following")

	// ErrNotFollowing indicates no follow edge exists to remove
	ErrNotFollowing = errors.New("not following")
)
