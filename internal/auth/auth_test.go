package auth_test

import (
	"testing"
	"time"

	"github.com/covergrid/brokercore/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher(t *testing.T) {
	hasher := auth.NewPasswordHasher()

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := hasher.Hash("hunter2hunter2")
		require.NoError(t, err)
		assert.Contains(t, hash, "$argon2id$")

		ok, err := hasher.Verify("hunter2hunter2", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := hasher.Hash("hunter2hunter2")
		require.NoError(t, err)

		ok, err := hasher.Verify("not-the-password", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("same password hashes differently each time", func(t *testing.T) {
		first, err := hasher.Hash("hunter2hunter2")
		require.NoError(t, err)
		second, err := hasher.Hash("hunter2hunter2")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("malformed hash is an error", func(t *testing.T) {
		_, err := hasher.Verify("whatever", "not-a-hash")
		assert.Error(t, err)
	})
}

func TestTokenManager(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)

	t.Run("round trips the claims", func(t *testing.T) {
		token, err := tm.Generate("principal-1", "a@example.com", "agent")
		require.NoError(t, err)

		claims, err := tm.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "principal-1", claims.PrincipalID)
		assert.Equal(t, "a@example.com", claims.Email)
		assert.Equal(t, "agent", claims.Role)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := auth.NewTokenManager("different_secret", time.Hour)
		token, err := other.Generate("principal-1", "a@example.com", "agent")
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := auth.NewTokenManager("test_secret", -time.Minute)
		token, err := expired.Generate("principal-1", "a@example.com", "agent")
		require.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := tm.Validate("not.a.jwt")
		assert.Error(t, err)
	})
}
