package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/tmorwood/userhub/internal/dependencies/clock"
	"github.com/tmorwood/userhub/internal/dependencies/hasher"
	"github.com/tmorwood/userhub/internal/dependencies/random"
	"github.com/tmorwood/userhub/internal/services/auth"
	"github.com/tmorwood/userhub/internal/storage"
	"github.com/tmorwood/userhub/internal/storage/memory"
	redisstorage "github.com/tmorwood/userhub/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Hasher hasher.Hasher

	// Services
	AuthService *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, hasher.New(), clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, h hasher.Hasher, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:     store,
		Clock:       clk,
		Random:      rnd,
		Hasher:      h,
		AuthService: auth.New(store, h, clk, rnd, logger),
	}
}
