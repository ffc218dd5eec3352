package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that discards everything. The auth service and
// both routers take a logger; tests pass this one to keep output quiet.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
