package follow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/accounts"
	"Ripple/internal/core/follows"
)

// mockFollowService implements follows.Service for testing
type mockFollowService struct {
	followFunc   func(ctx context.Context, followerID int64, username string) (*accounts.Account, error)
	unfollowFunc func(ctx context.Context, followerID int64, username string) (*accounts.Account, error)
}

func (m *mockFollowService) Follow(ctx context.Context, followerID int64, username string) (*accounts.Account, error) {
	if m.followFunc != nil {
		return m.followFunc(ctx, followerID, username)
	}
	return &accounts.Account{ID: 2, Username: username}, nil
}

func (m *mockFollowService) Unfollow(ctx context.Context, followerID int64, username string) (*accounts.Account, error) {
	if m.unfollowFunc != nil {
		return m.unfollowFunc(ctx, followerID, username)
	}
	return &accounts.Account{ID: 2, Username: username}, nil
}

func (m *mockFollowService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return false, nil
}

func (m *mockFollowService) CountFollowers(ctx context.Context, accountID int64) (int, error) {
	return 0, nil
}

func (m *mockFollowService) CountFollowing(ctx context.Context, accountID int64) (int, error) {
	return 0, nil
}

// newFollowRequest builds an authenticated POST with the username routed
// through chi's URL params
func newFollowRequest(t *testing.T, path, username string, accountID int64) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("username", username)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	if accountID != 0 {
		req = req.WithContext(middleware.SetTestAccountID(req.Context(), accountID))
	}
	return req
}

func TestHandleFollow_Success(t *testing.T) {
	handler := NewFollowHandler(&mockFollowService{})

	req := newFollowRequest(t, "/u/bar/follow", "bar", 1)
	rec := httptest.NewRecorder()
	handler.HandleFollow(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/u/bar" {
		t.Errorf("expected redirect to /u/bar, got %s", loc)
	}
}

func TestHandleFollow_Unauthenticated(t *testing.T) {
	handler := NewFollowHandler(&mockFollowService{})

	req := newFollowRequest(t, "/u/bar/follow", "bar", 0)
	rec := httptest.NewRecorder()
	handler.HandleFollow(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandleFollow_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"unknown account", accounts.ErrAccountNotFound, http.StatusNotFound, "AccountNotFound"},
		{"self follow", follows.ErrSelfFollow, http.StatusBadRequest, "InvalidOperation"},
		{"duplicate", follows.ErrAlreadyFollowing, http.StatusBadRequest, "AlreadyFollowing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewFollowHandler(&mockFollowService{
				followFunc: func(ctx context.Context, followerID int64, username string) (*accounts.Account, error) {
					return nil, tt.err
				},
			})

			req := newFollowRequest(t, "/u/bar/follow", "bar", 1)
			rec := httptest.NewRecorder()
			handler.HandleFollow(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if body["error"] != tt.wantError {
				t.Errorf("expected error %q, got %q", tt.wantError, body["error"])
			}
		})
	}
}

func TestHandleUnfollow_NotFollowing(t *testing.T) {
	handler := NewUnfollowHandler(&mockFollowService{
		unfollowFunc: func(ctx context.Context, followerID int64, username string) (*accounts.Account, error) {
			return nil, follows.ErrNotFollowing
		},
	})

	req := newFollowRequest(t, "/u/bar/unfollow", "bar", 1)
	rec := httptest.NewRecorder()
	handler.HandleUnfollow(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
