package tokengenerator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTokenExpiry matches the lifetime of a login session.
const DefaultSessionTokenExpiry = 23 * time.Hour

// TokenGenerator interface defines methods for session token operations
type TokenGenerator interface {
	// GenerateToken generates a token for the given account ID
	GenerateToken(accountID uuid.UUID) (string, time.Time, error)

	// ParseToken parses and validates a token, returning the account ID
	ParseToken(tokenStr string) (uuid.UUID, error)
}

// Claims struct for JWT claims
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// JwtTokenGenerator implements the TokenGenerator interface
type JwtTokenGenerator struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

// JwtTokenGeneratorOption configures a JwtTokenGenerator
type JwtTokenGeneratorOption func(*JwtTokenGenerator)

// WithExpiry sets the session token expiry duration
func WithExpiry(expiry time.Duration) JwtTokenGeneratorOption {
	return func(g *JwtTokenGenerator) {
		g.Expiry = expiry
	}
}

// NewJwtTokenGenerator creates a new JwtTokenGenerator
func NewJwtTokenGenerator(secret, issuer, audience string, opts ...JwtTokenGeneratorOption) *JwtTokenGenerator {
	g := &JwtTokenGenerator{
		Secret:   secret,
		Issuer:   issuer,
		Audience: audience,
		Expiry:   DefaultSessionTokenExpiry,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GenerateToken creates a new signed session token for the given account
func (g *JwtTokenGenerator) GenerateToken(accountID uuid.UUID) (string, time.Time, error) {
	now := time.Now().UTC()
	claims := Claims{
		ID: accountID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(g.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    g.Issuer,
			Subject:   accountID.String(),
			Audience:  jwt.ClaimStrings{g.Audience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(g.Secret))
	if err != nil {
		slog.Error("Failed sign JWT Claim string!", "err", err)
		return "", time.Time{}, err
	}
	return ss, claims.ExpiresAt.Time, nil
}

// ParseToken parses and validates a token string, returning the account ID claim
func (g *JwtTokenGenerator) ParseToken(tokenStr string) (uuid.UUID, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(g.Secret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token")
	}

	accountID, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid account id in token claims: %w", err)
	}

	return accountID, nil
}
