package mocks

import (
	"fmt"

	"github.com/tmorwood/userhub/internal/dependencies/random"
)

// MockRandom is a deterministic Random for testing. Each call to Token
// returns "tok-1", "tok-2", ...
type MockRandom struct {
	calls int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Token returns a deterministic token, ignoring n
func (r *MockRandom) Token(n int) string {
	r.calls++
	return fmt.Sprintf("tok-%d", r.calls)
}
