package hasher

import "golang.org/x/crypto/bcrypt"

// Hasher performs one-way salted hashing and verification of passwords.
// Implementations must be safe for concurrent use.
type Hasher interface {
	// Hash derives a salted one-way hash from a raw password. Repeated calls
	// with the same input produce different outputs (the salt varies), all of
	// which verify against the original password.
	Hash(password string) (string, error)

	// Verify reports whether the raw password matches the stored hash.
	// It fails closed: a malformed or truncated stored hash is a mismatch,
	// never an error or a panic.
	Verify(password, hash string) bool
}

// Bcrypt implements Hasher using golang.org/x/crypto/bcrypt
type Bcrypt struct {
	cost int
}

// Ensure Bcrypt implements Hasher
var _ Hasher = (*Bcrypt)(nil)

// New creates a Bcrypt hasher with the default cost
func New() *Bcrypt {
	return NewWithCost(bcrypt.DefaultCost)
}

// NewWithCost creates a Bcrypt hasher with an explicit cost.
// Tests use bcrypt.MinCost to keep hashing cheap.
func NewWithCost(cost int) *Bcrypt {
	return &Bcrypt{cost: cost}
}

// Hash derives a salted bcrypt hash from the password
func (h *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify recomputes using the salt embedded in the stored hash and compares
// in constant time. Any failure, including a malformed stored hash, is a
// mismatch.
func (h *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
