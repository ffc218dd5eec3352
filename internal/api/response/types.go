package response

import (
	"time"

	"github.com/tmorwood/userhub/internal/model"
)

// User represents a user in API responses. The password hash never leaves
// the server.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterResponse is the response for the register endpoint
type RegisterResponse struct {
	User User `json:"user"`
}

// LoginResponse is the response for the login endpoint
type LoginResponse struct {
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// LoginResponseFromSession creates a LoginResponse from a session
func LoginResponseFromSession(s *model.Session) LoginResponse {
	return LoginResponse{
		Username:     s.Username,
		SessionToken: s.Token,
	}
}

// MeResponse is the response for the me endpoint
type MeResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// MeResponseFromSession creates a MeResponse from a session
func MeResponseFromSession(s *model.Session) MeResponse {
	return MeResponse{
		UserID:   string(s.UserID),
		Username: s.Username,
	}
}
