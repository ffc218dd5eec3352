package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tmorwood/userhub/internal/services/auth"
	"github.com/tmorwood/userhub/internal/web/middleware"
	"github.com/tmorwood/userhub/internal/web/views"
)

// AuthHandler handles the signup, login, logout and profile pages
type AuthHandler struct {
	authService *auth.Service
	views       *views.Renderer
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, renderer *views.Renderer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		views:       renderer,
		logger:      logger,
	}
}

// SignupPage renders the signup form
func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.renderSignup(w, r, views.SignupData{
		PageData: views.PageData{
			Title: "Sign up",
			Flash: middleware.GetFlash(r.Context()),
		},
	})
}

// Signup handles signup form submission. The user-correctable outcomes of
// registration are rendered back on the form; anything else is a fault and
// gets the generic error surface.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderSignupError(w, r, "Invalid form data", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	_, err := h.authService.Register(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields),
			errors.Is(err, auth.ErrWeakPassword),
			errors.Is(err, auth.ErrUsernameTaken),
			errors.Is(err, auth.ErrInvalidUser):
			h.renderSignupError(w, r, capitalize(err.Error()), username)
		default:
			h.logger.Error("signup failed", slog.String("error", err.Error()))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	// Registration does not log the new account in; hand over to the login
	// flow instead.
	middleware.SetFlash(w, "success", "Account created. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, views.LoginData{
		PageData: views.PageData{
			Title: "Log in",
			Flash: middleware.GetFlash(r.Context()),
		},
		Next: r.URL.Query().Get("next"),
	})
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	session, err := h.authService.Login(r.Context(), username, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields),
			errors.Is(err, auth.ErrUnknownUsername),
			errors.Is(err, auth.ErrWrongPassword):
			h.renderLoginError(w, r, capitalize(err.Error()), username, next)
		default:
			h.logger.Error("login failed", slog.String("error", err.Error()))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	h.setSessionCookie(w, session.Token)
	middleware.SetFlash(w, "success", "Welcome back, "+session.Username+"!")

	// Redirect to original destination or the profile page. Only local paths
	// are honored; anything absolute or protocol-relative ("//evil.com")
	// would be an open redirect.
	if next != "" && strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		http.Redirect(w, r, next, http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/userProfile", http.StatusSeeOther)
	}
}

// Profile renders the profile page for the authenticated user
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSession(r.Context())

	data := views.PageData{
		Title:    "Profile",
		Flash:    middleware.GetFlash(r.Context()),
		Username: session.Username,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, "profile.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Logout destroys the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.authService.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Error("logout failed", slog.String("error", err.Error()))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	// Clear session cookie
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderSignup(w http.ResponseWriter, r *http.Request, data views.SignupData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, "signup.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *AuthHandler) renderSignupError(w http.ResponseWriter, r *http.Request, errorMsg, username string) {
	h.renderSignup(w, r, views.SignupData{
		PageData:     views.PageData{Title: "Sign up"},
		FormUsername: username,
		Error:        errorMsg,
	})
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, data views.LoginData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Render(w, "login.html", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username, next string) {
	h.renderLogin(w, r, views.LoginData{
		PageData:     views.PageData{Title: "Log in"},
		FormUsername: username,
		Error:        errorMsg,
		Next:         next,
	})
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
