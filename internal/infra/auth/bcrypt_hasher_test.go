package auth

import (
	"testing"

	"inventario/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("Password123!")

	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_DefaultCostWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("Password123!")

	require.NoError(t, err)
	assert.True(t, hasher.Check("Password123!", hash))
}

func TestBcryptHasher_CheckRejectsGarbageHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	assert.False(t, hasher.Check("Password123!", "not a bcrypt hash"))
}
