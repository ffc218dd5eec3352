package storage

import (
	"context"

	"github.com/tmorwood/userhub/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations.
	//
	// CreateUser is atomic create-if-absent: it either persists the user and
	// returns nil, or returns model.ErrUsernameTaken without writing anything.
	// Concurrent creates racing on one username result in exactly one success.
	// A structurally invalid record (empty username or hash) returns
	// model.ErrInvalidUser.
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// Session operations. DeleteSession on an absent token is a no-op.
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
}
