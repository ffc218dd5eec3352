package redis

import (
	"fmt"

	"github.com/tmorwood/userhub/internal/model"
)

// Key prefix for all userhub data
const keyPrefix = "userhub"

// userKey returns the Redis key for a User record. Records are keyed by
// username because that is the column carrying the uniqueness constraint.
func userKey(username string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, username)
}

// userIDIndexKey returns the Redis key for the user_id -> username index
func userIDIndexKey(id model.UserID) string {
	return fmt.Sprintf("%s:idx:user_id:%s", keyPrefix, id)
}

// sessionKey returns the Redis key for a Session
func sessionKey(token string) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}
