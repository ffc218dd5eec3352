package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tmorwood/userhub/internal/services/auth"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete account lifecycle from registration to logout
func (s *IntegrationSuite) TestCompleteAccountLifecycle() {
	// Step 1: Register an account
	user, err := s.app.AuthService.Register(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.NotEmpty(user.ID)
	s.Equal(s.app.MockClock.Now(), user.CreatedAt)

	// Registration stores a hash, never the raw password
	stored, err := s.app.Storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.NotEqual("Passw0rd", stored.PasswordHash)
	s.True(s.app.Hasher.Verify("Passw0rd", stored.PasswordHash))

	// Step 2: Log in with the same credentials
	session, err := s.app.AuthService.Login(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
	s.Equal(user.ID, session.UserID)
	s.Equal("alice", session.Username)

	// Step 3: The session token resolves to the same identity
	resolved, err := s.app.AuthService.ValidateSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(session.UserID, resolved.UserID)
	s.Equal("alice", resolved.Username)

	// Step 4: Log out, after which the token no longer resolves
	s.Require().NoError(s.app.AuthService.Logout(s.ctx, session.Token))

	_, err = s.app.AuthService.ValidateSession(s.ctx, session.Token)
	s.ErrorIs(err, auth.ErrInvalidSession)
}

// Test: Registration alone does not create a session
func (s *IntegrationSuite) TestRegistrationDoesNotLogIn() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)

	// The only way to obtain a session is an explicit login
	session, err := s.app.AuthService.Login(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)
	s.NotEmpty(session.Token)
}

// Test: Two independent sessions for the same account
func (s *IntegrationSuite) TestConcurrentSessionsAreIndependent() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)

	first, err := s.app.AuthService.Login(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)
	second, err := s.app.AuthService.Login(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)
	s.NotEqual(first.Token, second.Token)

	// Logging out one session leaves the other valid
	s.Require().NoError(s.app.AuthService.Logout(s.ctx, first.Token))

	_, err = s.app.AuthService.ValidateSession(s.ctx, first.Token)
	s.ErrorIs(err, auth.ErrInvalidSession)

	resolved, err := s.app.AuthService.ValidateSession(s.ctx, second.Token)
	s.Require().NoError(err)
	s.Equal("alice", resolved.Username)
}

// Test: Session keeps the identity captured at login
func (s *IntegrationSuite) TestSessionSnapshotsLoginTime() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)

	s.app.MockClock.Advance(2 * time.Hour)
	session, err := s.app.AuthService.Login(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)
	s.Equal(s.app.MockClock.Now(), session.CreatedAt)

	// Later validations return the snapshot, not a refreshed timestamp
	s.app.MockClock.Advance(30 * time.Minute)
	resolved, err := s.app.AuthService.ValidateSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(session.CreatedAt, resolved.CreatedAt)
}

// Test: Failed logins never mint sessions
func (s *IntegrationSuite) TestFailedLoginLeavesNoSession() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)

	_, err = s.app.AuthService.Login(s.ctx, "alice", "Wr0ngpass")
	s.ErrorIs(err, auth.ErrWrongPassword)

	_, err = s.app.AuthService.Login(s.ctx, "ghost", "Passw0rd")
	s.ErrorIs(err, auth.ErrUnknownUsername)
}

// Test: Accounts are isolated from each other
func (s *IntegrationSuite) TestMultipleAccounts() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)
	_, err = s.app.AuthService.Register(s.ctx, "bob", "Secur3pw")
	s.Require().NoError(err)

	// Each account only accepts its own password
	_, err = s.app.AuthService.Login(s.ctx, "bob", "Passw0rd")
	s.ErrorIs(err, auth.ErrWrongPassword)

	aliceSession, err := s.app.AuthService.Login(s.ctx, "alice", "Passw0rd")
	s.Require().NoError(err)
	bobSession, err := s.app.AuthService.Login(s.ctx, "bob", "Secur3pw")
	s.Require().NoError(err)

	s.NotEqual(aliceSession.UserID, bobSession.UserID)

	resolved, err := s.app.AuthService.ValidateSession(s.ctx, bobSession.Token)
	s.Require().NoError(err)
	s.Equal("bob", resolved.Username)
}

// Test: A rejected registration leaves nothing to log into
func (s *IntegrationSuite) TestRejectedRegistrationHasNoEffect() {
	_, err := s.app.AuthService.Register(s.ctx, "alice", "weak")
	s.ErrorIs(err, auth.ErrWeakPassword)

	_, err = s.app.AuthService.Login(s.ctx, "alice", "weak")
	s.ErrorIs(err, auth.ErrUnknownUsername)
}
