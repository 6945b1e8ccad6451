package feeds

import (
	"context"
	"errors"
	"time"
)

// Repository defines feed data access: counting and listing hydrated post
// views for each feed scope. viewerID <= 0 means an anonymous viewer.
type Repository interface {
	// CountGlobal counts all posts
	CountGlobal(ctx context.Context) (int, error)

	// ListGlobal lists all posts newest-first
	ListGlobal(ctx context.Context, viewerID int64, limit, offset int) ([]*PostView, error)

	// CountFollowed counts posts authored by accounts the viewer follows
	CountFollowed(ctx context.Context, followerID int64) (int, error)

	// ListFollowed lists posts authored by accounts the viewer follows,
	// newest-first
	ListFollowed(ctx context.Context, followerID int64, limit, offset int) ([]*PostView, error)

	// CountByAuthor counts posts by a single author
	CountByAuthor(ctx context.Context, authorID int64) (int, error)

	// ListByAuthor lists a single author's posts newest-first
	ListByAuthor(ctx context.Context, authorID, viewerID int64, limit, offset int) ([]*PostView, error)
}

// Service defines feed business logic
type Service interface {
	// GetGlobalFeed returns one page of the all-posts feed
	GetGlobalFeed(ctx context.Context, viewerID int64, page int) (*Page, error)

	// GetFriendsFeed returns one page of posts authored by accounts the
	// viewer follows. Fails ErrUnauthenticated for anonymous viewers.
	GetFriendsFeed(ctx context.Context, viewerID int64, page int) (*Page, error)

	// GetAuthorFeed returns one page of a single author's posts
	GetAuthorFeed(ctx context.Context, authorID, viewerID int64, page int) (*Page, error)
}

// PostView is a post hydrated for display: author username plus the
// viewer-relative like state
type PostView struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	Content        string    `json:"content" db:"content"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	AuthorID       int64     `json:"authorId" db:"author_id"`
	ID             int64     `json:"id" db:"id"`
	LikeCount      int       `json:"likeCount" db:"like_count"`
	ViewerHasLiked bool      `json:"viewerHasLiked" db:"viewer_has_liked"`
}

// Page is one bounded window of a feed plus navigation metadata
type Page struct {
	Items          []*PostView `json:"items"`
	Number         int         `json:"number"`
	TotalItems     int         `json:"totalItems"`
	TotalPages     int         `json:"totalPages"`
	PreviousNumber int         `json:"previousNumber,omitempty"`
	NextNumber     int         `json:"nextNumber,omitempty"`
	HasPrevious    bool        `json:"hasPrevious"`
	HasNext        bool        `json:"hasNext"`
}

// Errors
var (
	// ErrPageNotFound indicates the page number is out of range
	ErrPageNotFound = errors.New("page not found")

	// ErrUnauthenticated indicates the feed requires a logged-in viewer
	ErrUnauthenticated = errors.New("authentication required")
)
