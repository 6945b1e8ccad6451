package likes

import "errors"

var (
	// ErrAlreadyLiked indicates the account already likes this post
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrNotLiked indicates the account doesn't currently like this post
	ErrNotLiked = errors.New("post not liked yet")
)
