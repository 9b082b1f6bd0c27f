package password_test

import (
	"testing"

	"formhub/pkg/password"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, password.Verify("secret123", hash))
	assert.False(t, password.Verify("wrongpassword", hash))
}

func TestHashIsSaltedPerCall(t *testing.T) {
	first, err := password.Hash("secret123")
	assert.NoError(t, err)
	second, err := password.Hash("secret123")
	assert.NoError(t, err)

	// The per-call salt makes the hashes differ, but both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, password.Verify("secret123", first))
	assert.True(t, password.Verify("secret123", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, password.Verify("secret123", "not-a-bcrypt-hash"))
	assert.False(t, password.Verify("secret123", ""))
}
