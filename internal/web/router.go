package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tmorwood/userhub/internal/services/auth"
	"github.com/tmorwood/userhub/internal/web/handler"
	"github.com/tmorwood/userhub/internal/web/middleware"
	"github.com/tmorwood/userhub/internal/web/views"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	renderer, err := views.New()
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	requireAuth := middleware.RequireAuth(cfg.AuthService)
	requireAnonymous := middleware.RequireAnonymous(cfg.AuthService)
	optionalAuth := middleware.OptionalAuth(cfg.AuthService)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	homeHandler := handler.NewHomeHandler(renderer)
	authHandler := handler.NewAuthHandler(cfg.AuthService, renderer, cfg.Logger)

	// Home renders either way
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuth)
	public.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)

	// Signup and login are for anonymous visitors only
	anonymous := r.NewRoute().Subrouter()
	anonymous.Use(flashMiddleware)
	anonymous.Use(requireAnonymous)
	anonymous.HandleFunc("/signup", authHandler.SignupPage).Methods(http.MethodGet)
	anonymous.HandleFunc("/signup", authHandler.Signup).Methods(http.MethodPost)
	anonymous.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	anonymous.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	// Protected routes require an authenticated session
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(requireAuth)
	protected.HandleFunc("/userProfile", authHandler.Profile).Methods(http.MethodGet)
	protected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	return r, nil
}
