package account

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the service tier of an account.
type Subscription string

const (
	SubscriptionStarter  Subscription = "starter"
	SubscriptionPro      Subscription = "pro"
	SubscriptionBusiness Subscription = "business"
)

// Valid reports whether s is a known subscription tier.
func (s Subscription) Valid() bool {
	switch s {
	case SubscriptionStarter, SubscriptionPro, SubscriptionBusiness:
		return true
	}
	return false
}

// Account represents a user account. Email is unique across all accounts.
// Verified starts false and is flipped exactly once by a successful email
// verification; VerificationToken is present only while verification is
// pending. SessionToken is empty when the account is logged out.
type Account struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	Subscription      Subscription
	AvatarURL         string
	SessionToken      string
	Verified          bool
	VerificationToken *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
