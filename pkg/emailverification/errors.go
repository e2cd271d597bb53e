package emailverification

import "errors"

var (
	// ErrMalformedToken is returned when a token string does not parse
	ErrMalformedToken = errors.New("malformed verification token")

	// ErrTokenExpired is returned when a verification token has expired
	ErrTokenExpired = errors.New("verification token has expired")

	// ErrAccountNotFound is returned when no account holds the presented
	// token. Consumed, superseded and never-issued tokens are deliberately
	// indistinguishable.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAlreadyVerified is returned when requesting verification for an
	// account whose email is already verified
	ErrAlreadyVerified = errors.New("email already verified")

	// ErrNotFound is returned by the store when an account record vanishes
	// mid-operation. Surfaced as a server-side failure, not a client error.
	ErrNotFound = errors.New("account record not found")
)
