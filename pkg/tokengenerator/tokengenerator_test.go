package tokengenerator

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtTokenGenerator_RoundTrip(t *testing.T) {
	g := NewJwtTokenGenerator("test-secret", "simple-contacts", "simple-contacts")

	accountID := uuid.New()
	tokenStr, expiresAt, err := g.GenerateToken(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.WithinDuration(t, time.Now().UTC().Add(DefaultSessionTokenExpiry), expiresAt, time.Minute)

	parsedID, err := g.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, accountID, parsedID)
}

func TestJwtTokenGenerator_WithExpiry(t *testing.T) {
	g := NewJwtTokenGenerator("test-secret", "simple-contacts", "simple-contacts", WithExpiry(5*time.Minute))

	_, expiresAt, err := g.GenerateToken(uuid.New())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC().Add(5*time.Minute), expiresAt, time.Minute)
}

func TestJwtTokenGenerator_ParseToken_Invalid(t *testing.T) {
	g := NewJwtTokenGenerator("test-secret", "simple-contacts", "simple-contacts")

	t.Run("Garbage", func(t *testing.T) {
		_, err := g.ParseToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewJwtTokenGenerator("other-secret", "simple-contacts", "simple-contacts")
		tokenStr, _, err := other.GenerateToken(uuid.New())
		require.NoError(t, err)

		_, err = g.ParseToken(tokenStr)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewJwtTokenGenerator("test-secret", "simple-contacts", "simple-contacts", WithExpiry(-time.Minute))
		tokenStr, _, err := expired.GenerateToken(uuid.New())
		require.NoError(t, err)

		_, err = g.ParseToken(tokenStr)
		assert.Error(t, err)
	})
}
