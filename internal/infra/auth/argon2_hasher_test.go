package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("super-secret-password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	assert.True(t, hasher.Check("super-secret-password", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestArgon2Hasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("same-input")
	require.NoError(t, err)
	second, err := hasher.Hash("same-input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-input", first))
	assert.True(t, hasher.Check("same-input", second))
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	assert.False(t, hasher.Check("anything", ""))
	assert.False(t, hasher.Check("anything", "$2a$10$legacybcrypthashvalue"))
	assert.False(t, hasher.Check("anything", "$argon2id$v=19$m=65536,t=3,p=4$bad!salt$bad!key"))
}
