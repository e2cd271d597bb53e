package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository handles persistence for accounts.
type Repository interface {
	// Create persists a new account. Returns ErrEmailInUse when the email
	// is already taken.
	Create(ctx context.Context, acct *Account) error

	// GetByID returns the account with the given id, or ErrAccountNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// GetByEmail returns the account with the given email, or
	// ErrAccountNotFound.
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// UpdateSessionToken stores the current session token. An empty token
	// logs the account out.
	UpdateSessionToken(ctx context.Context, id uuid.UUID, token string) error

	// UpdateSubscription changes the account's subscription tier.
	UpdateSubscription(ctx context.Context, id uuid.UUID, subscription Subscription) error

	// UpdateAvatar stores the account's avatar URL.
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
}
