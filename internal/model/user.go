package model

import "time"

// UserID uniquely identifies a registered user across the system
type UserID string

// User is a registered identity: a unique username plus a password hash.
// The raw password is never stored; PasswordHash is opaque to everything
// except the credential hasher.
type User struct {
	ID           UserID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
