package account

import "errors"

var (
	// ErrAccountNotFound is returned when no account matches the lookup
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailInUse is returned when signing up with an email that already
	// belongs to an account
	ErrEmailInUse = errors.New("email in use")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so login failures do not reveal which
	ErrInvalidCredentials = errors.New("email or password is wrong")

	// ErrInvalidSubscription is returned for an unknown subscription tier
	ErrInvalidSubscription = errors.New("invalid subscription")
)
