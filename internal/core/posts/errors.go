package posts

import "errors"

var (
	// ErrPostNotFound indicates the requested post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthorized indicates the account is not the post's author
	ErrNotAuthorized = errors.New("not authorized to modify this post")

	// ErrEmptyContent indicates the post content is empty or whitespace only
	ErrEmptyContent = errors.New("post content must not be empty")
)
