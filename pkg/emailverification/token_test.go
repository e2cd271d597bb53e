package emailverification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("ExpiryStrictlyInTheFuture", func(t *testing.T) {
		before := time.Now().UTC()
		token, err := Generate(1 * time.Hour)
		require.NoError(t, err)
		assert.True(t, token.ExpiresAt.After(before))
	})

	t.Run("SecretNeverContainsSeparator", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			token, err := Generate(time.Minute)
			require.NoError(t, err)
			assert.NotContains(t, token.Secret, TokenSeparator)
			assert.NotEmpty(t, token.Secret)
		}
	})

	t.Run("SecretsAreUnique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			token, err := Generate(time.Minute)
			require.NoError(t, err)
			assert.False(t, seen[token.Secret], "duplicate secret generated")
			seen[token.Secret] = true
		}
	})
}

func TestTokenRoundTrip(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	token, err := GenerateAt(issued, 1*time.Hour)
	require.NoError(t, err)

	parsed, err := ParseToken(token.Encode())
	require.NoError(t, err)
	assert.Equal(t, token.Secret, parsed.Secret)
	assert.Equal(t, token.ExpiresAt.UnixMilli(), parsed.ExpiresAt.UnixMilli())
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "MissingSeparator", encoded: "deadbeef1234567890"},
		{name: "EmptyString", encoded: ""},
		{name: "EmptySecret", encoded: "T1700000000000"},
		{name: "EmptyExpiry", encoded: "deadbeefT"},
		{name: "NonNumericExpiry", encoded: "deadbeefTnotanumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.encoded)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}

	t.Run("Valid", func(t *testing.T) {
		parsed, err := ParseToken("abc-def" + TokenSeparator + "1700000000000")
		require.NoError(t, err)
		assert.Equal(t, "abc-def", parsed.Secret)
		assert.Equal(t, int64(1700000000000), parsed.ExpiresAt.UnixMilli())
	})
}

func TestTokenExpired(t *testing.T) {
	issued := time.UnixMilli(0).UTC()
	token, err := GenerateAt(issued, 3600000*time.Millisecond)
	require.NoError(t, err)

	assert.False(t, token.Expired(time.UnixMilli(3599999)))
	assert.False(t, token.Expired(time.UnixMilli(3600000)))
	assert.True(t, token.Expired(time.UnixMilli(3600001)))
}

func TestEncodeFormat(t *testing.T) {
	token := Token{Secret: "secret-part", ExpiresAt: time.UnixMilli(42).UTC()}
	encoded := token.Encode()
	assert.Equal(t, "secret-part"+TokenSeparator+"42", encoded)
	assert.Equal(t, 1, strings.Count(encoded[len(token.Secret):], TokenSeparator))
}
