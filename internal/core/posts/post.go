package posts

import (
	"time"
)

// Post represents a single text post.
// created_at is set once at creation; updated_at is refreshed on every
// content edit. The author never changes after creation.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Content   string    `json:"content" db:"content"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	ID        int64     `json:"id" db:"id"`
}
