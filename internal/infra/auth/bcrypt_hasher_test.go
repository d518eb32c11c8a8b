package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("counter-staff-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "counter-staff-secret", hash)

	assert.True(t, hasher.Check("counter-staff-secret", hash))
	assert.False(t, hasher.Check("wrong-secret", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("counter-staff-secret", "invalid_hash"))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("counter-staff-secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)

	assert.True(t, hasher.Check("counter-staff-secret", hash))
}

func TestBcryptHasher_WithOutOfRangeCost(t *testing.T) {
	hasher := NewBcryptHasherWithCost(99)

	hash, err := hasher.Hash("counter-staff-secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
