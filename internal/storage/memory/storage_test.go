package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/tmorwood/userhub/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user := &model.User{
		ID:           "u_1",
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}

	err := s.storage.CreateUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.PasswordHash, retrieved.PasswordHash)

	byID, err := s.storage.GetUser(s.ctx, "u_1")
	s.Require().NoError(err)
	s.Equal("alice", byID.Username)
}

func (s *StorageSuite) TestCreateUserRejectsDuplicateUsername() {
	first := &model.User{ID: "u_1", Username: "alice", PasswordHash: "hash1"}
	second := &model.User{ID: "u_2", Username: "alice", PasswordHash: "hash2"}

	s.Require().NoError(s.storage.CreateUser(s.ctx, first))

	err := s.storage.CreateUser(s.ctx, second)
	s.ErrorIs(err, model.ErrUsernameTaken)

	// Losing create must not have overwritten anything
	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("u_1"), retrieved.ID)
}

func (s *StorageSuite) TestCreateUserRejectsInvalidRecord() {
	err := s.storage.CreateUser(s.ctx, &model.User{ID: "u_1", Username: "", PasswordHash: "hash"})
	s.ErrorIs(err, model.ErrInvalidUser)

	err = s.storage.CreateUser(s.ctx, &model.User{ID: "u_1", Username: "alice", PasswordHash: ""})
	s.ErrorIs(err, model.ErrInvalidUser)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrUserNotFound)

	_, err = s.storage.GetUser(s.ctx, "u_missing")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestConcurrentCreatesOneWinner() {
	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := &model.User{
				ID:           model.UserID(fmt.Sprintf("u_%d", i)),
				Username:     "alice",
				PasswordHash: "hash",
			}
			errs[i] = s.storage.CreateUser(s.ctx, user)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			s.ErrorIs(err, model.ErrUsernameTaken)
		}
	}
	s.Equal(1, winners)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.Session{
		Token:     "sess_abc",
		UserID:    "u_1",
		Username:  "alice",
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "sess_abc")
	s.Require().NoError(err)
	s.Equal(session.UserID, retrieved.UserID)
	s.Equal("alice", retrieved.Username)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "sess_missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := &model.Session{Token: "sess_abc", UserID: "u_1", Username: "alice"}
	_ = s.storage.SaveSession(s.ctx, session)

	err := s.storage.DeleteSession(s.ctx, "sess_abc")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "sess_abc")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSessionNoopWhenAbsent() {
	err := s.storage.DeleteSession(s.ctx, "sess_never_existed")
	s.NoError(err)
}
