package emailverification

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSeparator joins the secret and the expiry in the encoded token string.
// Secrets are UUIDs (lowercase hex and dashes), so the separator can never
// appear inside one.
const TokenSeparator = "T"

// Token is a time-bounded, single-use verification credential. The expiry is
// fixed at issuance and carried inside the encoded string, so an expired token
// can be rejected without a store lookup.
type Token struct {
	Secret    string
	ExpiresAt time.Time
}

// Generate produces a fresh token expiring ttl from now.
func Generate(ttl time.Duration) (Token, error) {
	return GenerateAt(time.Now().UTC(), ttl)
}

// GenerateAt produces a fresh token expiring ttl from the given instant.
func GenerateAt(now time.Time, ttl time.Duration) (Token, error) {
	secret, err := uuid.NewRandom()
	if err != nil {
		return Token{}, fmt.Errorf("failed to generate token secret: %w", err)
	}

	return Token{
		Secret:    secret.String(),
		ExpiresAt: now.Add(ttl),
	}, nil
}

// Encode concatenates the secret and the expiry epoch milliseconds into one
// opaque string.
func (t Token) Encode() string {
	return t.Secret + TokenSeparator + strconv.FormatInt(t.ExpiresAt.UnixMilli(), 10)
}

// Expired reports whether the token's expiry lies strictly before now.
func (t Token) Expired(now time.Time) bool {
	return now.UnixMilli() > t.ExpiresAt.UnixMilli()
}

// ParseToken splits an encoded token string back into its secret and expiry.
// Returns ErrMalformedToken when the separator is missing, the secret is
// empty, or the expiry is not numeric.
func ParseToken(encoded string) (Token, error) {
	secret, expiry, found := strings.Cut(encoded, TokenSeparator)
	if !found || secret == "" || expiry == "" {
		return Token{}, ErrMalformedToken
	}

	millis, err := strconv.ParseInt(expiry, 10, 64)
	if err != nil {
		return Token{}, ErrMalformedToken
	}

	return Token{
		Secret:    secret,
		ExpiresAt: time.UnixMilli(millis).UTC(),
	}, nil
}
