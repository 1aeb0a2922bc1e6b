package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSecretRoundTrip(t *testing.T) {
	hash, err := HashSecret("s3cr3t-access-code")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, VerifySecret(hash, "s3cr3t-access-code"))
	assert.False(t, VerifySecret(hash, "wrong-code"))
}

func TestHashSecretSaltsEveryCall(t *testing.T) {
	first, err := HashSecret("same-input")
	require.NoError(t, err)
	second, err := HashSecret("same-input")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
	assert.True(t, VerifySecret(first, "same-input"))
	assert.True(t, VerifySecret(second, "same-input"))
}
