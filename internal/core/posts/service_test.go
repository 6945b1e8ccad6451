package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepository is a mock implementation of Repository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepository) UpdateContent(ctx context.Context, postID int64, content string) (*Post, error) {
	args := m.Called(ctx, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func TestCreate_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewPostService(mockRepo)

	now := time.Now()
	mockRepo.On("Create", mock.Anything, &Post{Content: "hello world", AuthorID: 7}).
		Return(&Post{ID: 1, Content: "hello world", AuthorID: 7, CreatedAt: now, UpdatedAt: now}, nil)

	post, err := service.Create(context.Background(), 7, "hello world")
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
	assert.Equal(t, int64(7), post.AuthorID)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
}

func TestCreate_EmptyContent(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewPostService(mockRepo)

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := service.Create(context.Background(), 7, content)
		assert.ErrorIs(t, err, ErrEmptyContent)
	}
	mockRepo.AssertNotCalled(t, "Create")
}

func TestEdit_Success(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewPostService(mockRepo)

	created := time.Now().Add(-time.Hour)
	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, Content: "old", AuthorID: 7, CreatedAt: created, UpdatedAt: created}, nil)
	mockRepo.On("UpdateContent", mock.Anything, int64(1), "new content").
		Return(&Post{ID: 1, Content: "new content", AuthorID: 7, CreatedAt: created, UpdatedAt: time.Now()}, nil)

	post, err := service.Edit(context.Background(), 7, 1, "new content")
	require.NoError(t, err)
	assert.Equal(t, "new content", post.Content)
	// created_at is immutable, updated_at moves forward
	assert.Equal(t, created, post.CreatedAt)
	assert.True(t, post.UpdatedAt.After(post.CreatedAt))
}

func TestEdit_NotFound(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewPostService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, ErrPostNotFound)

	_, err := service.Edit(context.Background(), 7, 99, "new content")
	assert.ErrorIs(t, err, ErrPostNotFound)
	mockRepo.AssertNotCalled(t, "UpdateContent")
}

func TestEdit_NotOwner(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewPostService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, Content: "old", AuthorID: 7}, nil)

	// Account 8 is authenticated but doesn't own post 1
	_, err := service.Edit(context.Background(), 8, 1, "hijacked")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	mockRepo.AssertNotCalled(t, "UpdateContent")
}

func TestEdit_EmptyContent(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := NewPostService(mockRepo)

	mockRepo.On("GetByID", mock.Anything, int64(1)).
		Return(&Post{ID: 1, Content: "old", AuthorID: 7}, nil)

	_, err := service.Edit(context.Background(), 7, 1, "   ")
	assert.ErrorIs(t, err, ErrEmptyContent)
	mockRepo.AssertNotCalled(t, "UpdateContent")
}
