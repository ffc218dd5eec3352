package factory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tmorwood/userhub/internal/dependencies/hasher"
	"github.com/tmorwood/userhub/internal/dependencies/mocks"
	"github.com/tmorwood/userhub/internal/dependencies/random"
	"github.com/tmorwood/userhub/internal/storage/memory"
	"github.com/tmorwood/userhub/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing: in-memory storage, a
// fixed clock and a minimum-cost hasher so tests stay fast. Token generation
// stays real so sessions are unique across tests.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(
		store,
		hasher.NewWithCost(bcrypt.MinCost),
		mockClock,
		random.New(),
		testutil.NopLogger(),
	)

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
