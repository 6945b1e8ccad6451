package likes

import (
	"time"
)

// Like is a single (account, post) edge. An account's "likes" and a
// post's "fans" are the two query views over this one relation.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	AccountID int64     `json:"accountId" db:"account_id"`
	PostID    int64     `json:"postId" db:"post_id"`
}

// LikeState is the per-post like fragment returned to the client after a
// like/unlike, and embedded in feed views
type LikeState struct {
	PostID    int64 `json:"postId"`
	LikeCount int   `json:"likeCount"`
	Liked     bool  `json:"liked"`
}
