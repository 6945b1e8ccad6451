package feeds

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFeedRepo serves post views from memory, ordering them the way the
// SQL repository does: created_at descending, id descending on ties.
type fakeFeedRepo struct {
	posts     []*PostView
	followees map[int64][]int64 // follower -> followed author ids
}

func (f *fakeFeedRepo) sorted(filter func(*PostView) bool) []*PostView {
	var out []*PostView
	for _, p := range f.posts {
		if filter(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func window(posts []*PostView, limit, offset int) []*PostView {
	if offset >= len(posts) {
		return nil
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

func (f *fakeFeedRepo) CountGlobal(ctx context.Context) (int, error) {
	return len(f.posts), nil
}

func (f *fakeFeedRepo) ListGlobal(ctx context.Context, viewerID int64, limit, offset int) ([]*PostView, error) {
	return window(f.sorted(func(*PostView) bool { return true }), limit, offset), nil
}

func (f *fakeFeedRepo) followedFilter(followerID int64) func(*PostView) bool {
	followed := make(map[int64]bool)
	for _, id := range f.followees[followerID] {
		followed[id] = true
	}
	return func(p *PostView) bool { return followed[p.AuthorID] }
}

func (f *fakeFeedRepo) CountFollowed(ctx context.Context, followerID int64) (int, error) {
	return len(f.sorted(f.followedFilter(followerID))), nil
}

func (f *fakeFeedRepo) ListFollowed(ctx context.Context, followerID int64, limit, offset int) ([]*PostView, error) {
	return window(f.sorted(f.followedFilter(followerID)), limit, offset), nil
}

func (f *fakeFeedRepo) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	return len(f.sorted(func(p *PostView) bool { return p.AuthorID == authorID })), nil
}

func (f *fakeFeedRepo) ListByAuthor(ctx context.Context, authorID, viewerID int64, limit, offset int) ([]*PostView, error) {
	return window(f.sorted(func(p *PostView) bool { return p.AuthorID == authorID }), limit, offset), nil
}

func makePosts(n int, authorID int64) []*PostView {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	posts := make([]*PostView, n)
	for i := 0; i < n; i++ {
		posts[i] = &PostView{
			ID:        int64(i + 1),
			AuthorID:  authorID,
			Content:   "post",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return posts
}

func TestGlobalFeed_NewestFirst(t *testing.T) {
	repo := &fakeFeedRepo{posts: makePosts(25, 1)}
	service := NewFeedService(repo)

	page, err := service.GetGlobalFeed(context.Background(), 0, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 10)

	// Strictly decreasing created_at
	for i := 1; i < len(page.Items); i++ {
		assert.True(t, page.Items[i-1].CreatedAt.After(page.Items[i].CreatedAt),
			"item %d should be newer than item %d", i-1, i)
	}
	// The newest post is post 25
	assert.Equal(t, int64(25), page.Items[0].ID)
}

func TestGlobalFeed_BadPage(t *testing.T) {
	repo := &fakeFeedRepo{posts: makePosts(25, 1)}
	service := NewFeedService(repo)

	for _, page := range []int{-100, 0, 4, 100} {
		_, err := service.GetGlobalFeed(context.Background(), 0, page)
		assert.ErrorIs(t, err, ErrPageNotFound, "page %d", page)
	}
}

func TestGlobalFeed_EmptyFirstPage(t *testing.T) {
	repo := &fakeFeedRepo{}
	service := NewFeedService(repo)

	page, err := service.GetGlobalFeed(context.Background(), 0, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext)

	_, err = service.GetGlobalFeed(context.Background(), 0, 2)
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestFriendsFeed_RequiresViewer(t *testing.T) {
	repo := &fakeFeedRepo{posts: makePosts(5, 1)}
	service := NewFeedService(repo)

	_, err := service.GetFriendsFeed(context.Background(), 0, 1)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestFriendsFeed_OnlyFollowedAuthors(t *testing.T) {
	// foo (id 1) wrote three posts, baz (id 3) wrote two; bar (id 2)
	// follows only foo
	fooPosts := makePosts(3, 1)
	bazPosts := makePosts(2, 3)
	for i, p := range bazPosts {
		p.ID = int64(100 + i)
	}

	repo := &fakeFeedRepo{
		posts:     append(fooPosts, bazPosts...),
		followees: map[int64][]int64{2: {1}},
	}
	service := NewFeedService(repo)

	page, err := service.GetFriendsFeed(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	for _, item := range page.Items {
		assert.Equal(t, int64(1), item.AuthorID)
	}
	assert.Equal(t, 3, page.TotalItems)
}

func TestFriendsFeed_ReflectsEdits(t *testing.T) {
	repo := &fakeFeedRepo{
		posts:     makePosts(3, 1),
		followees: map[int64][]int64{2: {1}},
	}
	service := NewFeedService(repo)

	// Edit the oldest post's content; the feed shows the new content on
	// the next fetch without growing
	repo.posts[0].Content = "edited"
	repo.posts[0].UpdatedAt = time.Now()

	page, err := service.GetFriendsFeed(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "edited", page.Items[2].Content)
	// Ordering still follows created_at, not updated_at
	assert.Equal(t, int64(3), page.Items[0].ID)
}

func TestAuthorFeed_Pagination(t *testing.T) {
	repo := &fakeFeedRepo{posts: makePosts(15, 1)}
	service := NewFeedService(repo)

	page, err := service.GetAuthorFeed(context.Background(), 1, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.True(t, page.HasPrevious)
	assert.False(t, page.HasNext)
}
