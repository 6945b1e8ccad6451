package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/accounts"
	"Ripple/internal/core/feeds"
	"Ripple/internal/core/profiles"
)

// Handlers provides the HTML page handlers
type Handlers struct {
	templates *Templates
	accounts  accounts.Service
	feeds     feeds.Service
	profiles  profiles.Service
}

// NewHandlers creates a new Handlers instance with the provided dependencies.
func NewHandlers(templates *Templates, accountService accounts.Service, feedService feeds.Service, profileService profiles.Service) *Handlers {
	return &Handlers{
		templates: templates,
		accounts:  accountService,
		feeds:     feedService,
		profiles:  profileService,
	}
}

// viewer describes the logged-in account for the page chrome
type viewer struct {
	Username string
	LoggedIn bool
}

// FeedPageData holds data for the feed templates
type FeedPageData struct {
	Title    string
	BasePath string
	Viewer   viewer
	Page     *feeds.Page
}

// ProfilePageData holds data for the profile template
type ProfilePageData struct {
	Viewer  viewer
	Profile *profiles.Profile
}

// FormPageData holds data for the login/register forms
type FormPageData struct {
	Title  string
	Viewer viewer
}

// FeedHandler renders the global feed
// GET /?page=N
func (h *Handlers) FeedHandler(w http.ResponseWriter, r *http.Request) {
	// Only handle the exact root path; unknown paths are 404s, not feeds
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	viewerID := middleware.GetAccountID(r)
	feedPage, err := h.feeds.GetGlobalFeed(r.Context(), viewerID, page)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, "feed.html", FeedPageData{
		Title:    "All Posts",
		BasePath: "/",
		Viewer:   h.viewer(r),
		Page:     feedPage,
	})
}

// FollowingHandler renders the friends-only feed
// GET /following?page=N
func (h *Handlers) FollowingHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	viewerID := middleware.GetAccountID(r)
	feedPage, err := h.feeds.GetFriendsFeed(r.Context(), viewerID, page)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, "feed.html", FeedPageData{
		Title:    "Following",
		BasePath: "/following",
		Viewer:   h.viewer(r),
		Page:     feedPage,
	})
}

// ProfileHandler renders an account's profile and posts
// GET /u/{username}?page=N
func (h *Handlers) ProfileHandler(w http.ResponseWriter, r *http.Request) {
	page, ok := h.parsePage(w, r)
	if !ok {
		return
	}

	viewerID := middleware.GetAccountID(r)
	profile, err := h.profiles.GetProfile(r.Context(), viewerID, chi.URLParam(r, "username"), page)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, "profile.html", ProfilePageData{
		Viewer:  h.viewer(r),
		Profile: profile,
	})
}

// LoginPageHandler renders the login form
// GET /login
func (h *Handlers) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", FormPageData{Title: "Log In", Viewer: h.viewer(r)})
}

// RegisterPageHandler renders the registration form
// GET /register
func (h *Handlers) RegisterPageHandler(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", FormPageData{Title: "Register", Viewer: h.viewer(r)})
}

// parsePage reads the 1-based page query parameter. A missing parameter
// means page 1; a non-numeric one is a 404, same as an out-of-range
// number. Writes the response itself when returning ok=false.
func (h *Handlers) parsePage(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, true
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return page, true
}

// viewer resolves the logged-in account for the page chrome
func (h *Handlers) viewer(r *http.Request) viewer {
	accountID := middleware.GetAccountID(r)
	if accountID == 0 {
		return viewer{}
	}

	account, err := h.accounts.GetByID(r.Context(), accountID)
	if err != nil {
		// A stale session points at a missing account; render anonymous
		log.Printf("Failed to resolve session account %d: %v", accountID, err)
		return viewer{}
	}

	return viewer{Username: account.Username, LoggedIn: true}
}

func (h *Handlers) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.Render(w, name, data); err != nil {
		log.Printf("Failed to render %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderError maps resolver errors onto page status codes
func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, feeds.ErrPageNotFound), errors.Is(err, accounts.ErrAccountNotFound):
		http.NotFound(w, r)
	case errors.Is(err, feeds.ErrUnauthenticated):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	default:
		log.Printf("Page handler error: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
