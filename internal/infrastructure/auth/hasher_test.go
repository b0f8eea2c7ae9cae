package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewPBKDF2PasswordHasher(minIterations)

	hash, salt, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEmpty(t, salt)

	assert.NoError(t, hasher.Verify("correct horse battery staple", hash, salt))
	assert.Error(t, hasher.Verify("wrong password", hash, salt))
}

func TestHashProducesUniqueSalts(t *testing.T) {
	hasher := NewPBKDF2PasswordHasher(minIterations)

	hash1, salt1, err := hasher.Hash("password")
	require.NoError(t, err)
	hash2, salt2, err := hasher.Hash("password")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyRejectsMalformedRecords(t *testing.T) {
	hasher := NewPBKDF2PasswordHasher(minIterations)

	assert.Error(t, hasher.Verify("password", "not-hex!", "deadbeef"))
	assert.Error(t, hasher.Verify("password", "deadbeef", "not-hex!"))
}

func TestIterationFloor(t *testing.T) {
	hasher := NewPBKDF2PasswordHasher(1)
	assert.Equal(t, minIterations, hasher.iterations)
}
