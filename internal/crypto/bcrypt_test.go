package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, h.Verify("secret123", hash))
	assert.False(t, h.Verify("secret124", hash))
	assert.False(t, h.Verify("", hash))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("secret123")
	require.NoError(t, err)
	second, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("secret123", first))
	assert.True(t, h.Verify("secret123", second))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	h := NewBcryptHasher(5)

	hash, err := h.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestNewBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	for _, cost := range []int{0, 3, 32} {
		h := NewBcryptHasher(cost).(*bcryptHasher)
		assert.Equal(t, DefaultBcryptCost, h.cost)
	}
}

func TestBcryptHasher_VerifyMalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("secret123", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("secret123", ""))
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}
