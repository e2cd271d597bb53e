package emailverification

import (
	"context"

	"github.com/google/uuid"
)

// AccountStatus is the slice of an account record the verification flow
// touches. Verified accounts never hold a token.
type AccountStatus struct {
	ID                uuid.UUID
	Email             string
	Verified          bool
	VerificationToken *string
}

// Repository handles the account-store operations of the verification flow.
// Each operation is a single-record update; the store is the serialization
// point, no in-process locking is required.
type Repository interface {
	// IssueToken unconditionally overwrites the account's pending
	// verification token. Any previous token is superseded. Returns
	// ErrNotFound if the account no longer exists.
	IssueToken(ctx context.Context, accountID uuid.UUID, encodedToken string) error

	// FindByToken returns the account holding the exact token string.
	// Returns ErrAccountNotFound when no account holds it, covering
	// never-issued, consumed and superseded tokens alike.
	FindByToken(ctx context.Context, encodedToken string) (*AccountStatus, error)

	// FindByEmail returns the account with the given email, or
	// ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*AccountStatus, error)

	// MarkVerified sets verified=true and clears the stored token in a
	// single update. Returns ErrNotFound if the account no longer exists.
	MarkVerified(ctx context.Context, accountID uuid.UUID) error
}
