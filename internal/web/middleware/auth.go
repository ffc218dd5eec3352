package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tmorwood/userhub/internal/model"
	"github.com/tmorwood/userhub/internal/services/auth"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "session"

// GetSession retrieves the authenticated session from the request context.
// Returns nil if the request is anonymous.
func GetSession(ctx context.Context) *model.Session {
	session, _ := ctx.Value(sessionContextKey).(*model.Session)
	return session
}

// RequireAuth returns middleware that gates a route to authenticated
// requests. Anonymous requests are redirected to the login page, carrying the
// original URL so login can send them back.
func RequireAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessionFromRequest(r, authService)
			if session == nil {
				// RequestURI keeps the query string; escaping keeps it a
				// single query parameter.
				next := url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, "/login?next="+next, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAnonymous returns middleware that gates a route to anonymous
// requests. Authenticated requests are redirected to the profile page.
// The exact complement of RequireAuth.
func RequireAnonymous(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessionFromRequest(r, authService) != nil {
				http.Redirect(w, r, "/userProfile", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// OptionalAuth returns middleware that resolves the session if present but
// doesn't require it. Used by pages that render either way.
func OptionalAuth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessionFromRequest(r, authService)
			ctx := context.WithValue(r.Context(), sessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromRequest(r *http.Request, authService *auth.Service) *model.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	session, err := authService.ValidateSession(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}

	return session
}
