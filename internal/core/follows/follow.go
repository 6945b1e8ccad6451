package follows

import (
	"time"
)

// Follow is a single directed edge: follower follows followee.
// "Friends" (who an account follows) and "followers" (who follows it) are
// both query views over this one relation, so the two sides can never
// desynchronize. The (follower, followee) pair is unique and self-edges
// are rejected before they reach storage.
type Follow struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	FollowerID int64     `json:"followerId" db:"follower_id"`
	FolloweeID int64     `json:"followeeId" db:"followee_id"`
}
