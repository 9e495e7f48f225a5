package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("sup3rsecret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "sup3rsecret", hash)

	ok, err := VerifyPassword(hash, "sup3rsecret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("sup3rsecret")
	require.NoError(t, err)

	ok, err := VerifyPassword(hash, "wrongpassword")
	require.NoError(t, err)
	assert.False(t, ok)
}

// The encoded hash must come first; passing the plaintext in that
// position makes argon2 fail to decode and rejects every login.
func TestVerifyPasswordArgumentOrder(t *testing.T) {
	hash, err := HashPassword("sup3rsecret")
	require.NoError(t, err)

	ok, err := VerifyPassword(hash, "sup3rsecret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("sup3rsecret", hash)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("sup3rsecret")
	require.NoError(t, err)
	second, err := HashPassword("sup3rsecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
