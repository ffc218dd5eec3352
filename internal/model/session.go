package model

import "time"

// Session binds an opaque token to an authenticated user. It is a snapshot
// taken at login time: the user is not re-validated against the directory on
// subsequent requests, so a later change to the underlying User does not
// retroactively invalidate the session.
type Session struct {
	Token     string
	UserID    UserID
	Username  string
	CreatedAt time.Time
}
