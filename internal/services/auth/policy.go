package auth

import (
	"strings"
	"unicode"
)

const minPasswordLength = 6

// strongPassword reports whether the password satisfies the strength policy:
// at least 6 characters, with at least one digit, one lowercase letter and
// one uppercase letter.
func strongPassword(password string) bool {
	return len(password) >= minPasswordLength &&
		strings.ContainsFunc(password, unicode.IsDigit) &&
		strings.ContainsFunc(password, unicode.IsLower) &&
		strings.ContainsFunc(password, unicode.IsUpper)
}
