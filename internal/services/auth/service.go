package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tmorwood/userhub/internal/dependencies/clock"
	"github.com/tmorwood/userhub/internal/dependencies/hasher"
	"github.com/tmorwood/userhub/internal/dependencies/random"
	"github.com/tmorwood/userhub/internal/model"
	"github.com/tmorwood/userhub/internal/storage"
)

// Errors. These are the expected, user-correctable outcomes of registration
// and login; callers render them in place. Anything else returned by this
// package is a fault and belongs to the generic error boundary.
var (
	ErrMissingFields   = errors.New("username and password are required")
	ErrWeakPassword    = errors.New("password must be at least 6 characters and contain a digit, a lowercase and an uppercase letter")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrInvalidUser     = errors.New("invalid user details")
	ErrUnknownUsername = errors.New("username is not registered")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrInvalidSession  = errors.New("invalid session")
)

// Service handles registration, login and session management
type Service struct {
	storage storage.Storage
	hasher  hasher.Hasher
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new auth Service
func New(store storage.Storage, h hasher.Hasher, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: store,
		hasher:  h,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// Register validates the input, hashes the password and creates the user.
// It does not establish a session: a new account logs in through Login.
//
// Duplicate usernames are resolved entirely by the storage layer's atomic
// create, so two concurrent registrations for one username yield exactly one
// success and one ErrUsernameTaken. On any failure nothing is persisted.
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !strongPassword(password) {
		return nil, ErrWeakPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		ID:           model.UserID("u_" + s.random.Token(12)),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken):
			return nil, ErrUsernameTaken
		case errors.Is(err, model.ErrInvalidUser):
			return nil, fmt.Errorf("%w: %v", ErrInvalidUser, err)
		default:
			return nil, err
		}
	}

	s.logger.Info("user registered", slog.String("username", user.Username))
	return user, nil
}

// Login verifies the credentials and establishes a session on success.
// An unknown username and a wrong password are reported distinctly.
func (s *Service) Login(ctx context.Context, username, password string) (*model.Session, error) {
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrUnknownUsername
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	session := &model.Session{
		Token:     "sess_" + s.random.Token(16),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", slog.String("username", user.Username))
	return session, nil
}

// ValidateSession resolves a session token to the session established at
// login. The bound user is a snapshot; it is not re-checked against the
// directory here.
func (s *Service) ValidateSession(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	session, err := s.storage.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return session, nil
}

// Logout destroys the session. Destroying an absent or already-destroyed
// session is a no-op, not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.storage.DeleteSession(ctx, token)
}
