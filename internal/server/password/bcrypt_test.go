package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSalt = []byte("0123456789abcdef")

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(testSalt, bcrypt.MinCost)

	hash, err := h.Hash("s3cr3t")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "s3cr3t", hash)

	assert.True(t, h.Verify("s3cr3t", hash))
	assert.False(t, h.Verify("wrong", hash))
}

func TestBcryptHasher_DifferentPasswordsDoNotCollide(t *testing.T) {
	h := NewBcryptHasher(testSalt, bcrypt.MinCost)

	hash, err := h.Hash("password-one")
	require.NoError(t, err)

	assert.False(t, h.Verify("password-two", hash))
}

func TestBcryptHasher_SaltChangesInvalidateHashes(t *testing.T) {
	h1 := NewBcryptHasher(testSalt, bcrypt.MinCost)
	h2 := NewBcryptHasher([]byte("fedcba9876543210"), bcrypt.MinCost)

	hash, err := h1.Hash("s3cr3t")
	require.NoError(t, err)

	assert.True(t, h1.Verify("s3cr3t", hash))
	assert.False(t, h2.Verify("s3cr3t", hash), "hash must only verify under the salt it was created with")
}

func TestBcryptHasher_VerifyMalformedHashIsFalse(t *testing.T) {
	h := NewBcryptHasher(testSalt, bcrypt.MinCost)

	assert.False(t, h.Verify("anything", ""))
	assert.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(testSalt, bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("x", 80))
	require.Error(t, err)
}

func TestNewBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	h := NewBcryptHasher(testSalt, 99)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
