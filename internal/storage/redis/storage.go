package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tmorwood/userhub/internal/model"
	"github.com/tmorwood/userhub/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

// createUserScript claims the username and writes the ID index as one atomic
// server-side step, so a failed create leaves no partial state behind.
// KEYS[1] = user record key, KEYS[2] = ID index key;
// ARGV[1] = user record, ARGV[2] = username.
var createUserScript = redis.NewScript(`
	if redis.call('SETNX', KEYS[1], ARGV[1]) == 1 then
		redis.call('SET', KEYS[2], ARGV[2])
		return 1
	end
	return 0
`)

// CreateUser writes the user record keyed by username, so the uniqueness
// constraint and the write are a single atomic operation. Concurrent creates
// racing on one username get exactly one success.
func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	if user.Username == "" || user.PasswordHash == "" {
		return model.ErrInvalidUser
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	keys := []string{userKey(user.Username), userIDIndexKey(user.ID)}
	created, err := createUserScript.Run(ctx, s.client, keys, data, user.Username).Int()
	if err != nil {
		return err
	}
	if created == 0 {
		return model.ErrUsernameTaken
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	username, err := s.client.Get(ctx, userIDIndexKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUserByUsername(ctx, username)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, sessionKey(session.Token), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
