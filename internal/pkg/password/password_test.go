package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("hunter2-but-longer")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2-but-longer", hash)
	assert.True(t, Verify("hunter2-but-longer", hash))
	assert.False(t, Verify("hunter2-but-wrong", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ")
	assert.True(t, Verify("same-password", first))
	assert.True(t, Verify("same-password", second))
}

func TestVerifyRejectsGarbageHash(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
}

func TestVerifyDummyDoesNotPanic(t *testing.T) {
	VerifyDummy("whatever")
	VerifyDummy("")
}

func TestHashToken(t *testing.T) {
	hash := HashToken("some-refresh-token")

	assert.Len(t, hash, 64, "sha256 hex digest")
	assert.Equal(t, hash, HashToken("some-refresh-token"))
	assert.NotEqual(t, hash, HashToken("another-refresh-token"))
}
