package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

// Context key for the authenticated account id
type contextKey string

const AccountIDKey contextKey = "account_id"

// SessionName is the cookie name holding the login session
const SessionName = "ripple_session"

// sessionAccountKey is the session value holding the account id
const sessionAccountKey = "account_id"

// SessionAuthMiddleware resolves the login session cookie into an
// authenticated account id on the request context
type SessionAuthMiddleware struct {
	store sessions.Store
}

// NewSessionAuthMiddleware creates a new session auth middleware
func NewSessionAuthMiddleware(store sessions.Store) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		store: store,
	}
}

// RequireAuth ensures the request carries a valid login session
// If not authenticated, returns 401
// If authenticated, injects the account id into the context
func (m *SessionAuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := m.accountIDFromSession(r)
		if accountID == 0 {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), AccountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the account id if a session exists, but doesn't
// require it. Used by pages that render for both logged-in and anonymous
// visitors.
func (m *SessionAuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := m.accountIDFromSession(r)
		if accountID == 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), AccountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accountIDFromSession reads the account id out of the session cookie
// Returns 0 when there is no usable session
func (m *SessionAuthMiddleware) accountIDFromSession(r *http.Request) int64 {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		// A tampered or stale cookie is treated as anonymous
		return 0
	}

	accountID, _ := session.Values[sessionAccountKey].(int64)
	return accountID
}

// Login writes the account id into a fresh session cookie
func Login(w http.ResponseWriter, r *http.Request, store sessions.Store, accountID int64) error {
	session, _ := store.Get(r, SessionName)
	session.Values[sessionAccountKey] = accountID
	session.Options.HttpOnly = true
	session.Options.SameSite = http.SameSiteLaxMode
	return session.Save(r, w)
}

// Logout expires the session cookie
func Logout(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, _ := store.Get(r, SessionName)
	delete(session.Values, sessionAccountKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// GetAccountID extracts the authenticated account id from the request
// context. Returns 0 if not authenticated.
func GetAccountID(r *http.Request) int64 {
	id, _ := r.Context().Value(AccountIDKey).(int64)
	return id
}

// SetTestAccountID sets the account id in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, AccountIDKey, accountID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthenticationRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
