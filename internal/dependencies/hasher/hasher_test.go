package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashProducesDifferentOutputsForSameInput(t *testing.T) {
	h := NewWithCost(bcrypt.MinCost)

	first, err := h.Hash("Passw0rd")
	require.NoError(t, err)
	second, err := h.Hash("Passw0rd")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("Passw0rd", first))
	assert.True(t, h.Verify("Passw0rd", second))
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	h := NewWithCost(bcrypt.MinCost)

	hash, err := h.Hash("Passw0rd")
	require.NoError(t, err)

	assert.False(t, h.Verify("Passw0rd!", hash))
	assert.False(t, h.Verify("", hash))
}

func TestVerifyFailsClosedOnMalformedHash(t *testing.T) {
	h := New()

	assert.False(t, h.Verify("Passw0rd", ""))
	assert.False(t, h.Verify("Passw0rd", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("Passw0rd", "$2a$10$truncated"))
}

func TestHashNeverStoresRawPassword(t *testing.T) {
	h := NewWithCost(bcrypt.MinCost)

	hash, err := h.Hash("Passw0rd")
	require.NoError(t, err)
	assert.NotContains(t, hash, "Passw0rd")
}
