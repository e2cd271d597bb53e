// Package emailverification manages the email verification token lifecycle
// for simple-contacts accounts.
//
// A verification token is a time-bounded, single-use credential proving
// control of an email address. It is encoded as a single opaque string:
// a random UUID secret and the absolute expiry time in epoch milliseconds,
// joined by a fixed separator. Because the expiry travels inside the token,
// an expired token is rejected without touching the store.
//
// # States
//
// An account's verification state is derived from its (verified,
// verificationToken) pair, never stored separately:
//
//   - Unverified, no token: account exists, nothing pending
//   - Unverified, pending token: a token is stored and a verification email
//     has been dispatched
//   - Verified: terminal; the stored token is cleared and no later
//     verification attempt can succeed
//
// # Basic Usage
//
//	repo := emailverification.NewMongoRepository(db)
//	service := emailverification.NewEmailVerificationService(
//		repo,
//		notificationManager,
//		"https://app.example.com",
//		emailverification.WithTokenExpiry(1*time.Hour),
//	)
//
//	// On signup: issue the first token and send the email
//	encoded, err := service.Begin(ctx, account.ID, account.Email)
//
//	// On an inbound verification link
//	err = service.Verify(ctx, encoded)
//
//	// On user request, replace the pending token with a fresh one
//	err = service.Resend(ctx, "user@example.com")
//
// # Error Semantics
//
// Verify distinguishes a malformed token, an expired token and an unknown
// token. A consumed or superseded token is reported identically to one that
// was never issued (ErrAccountNotFound): after consumption the store no
// longer holds the string, and collapsing the two avoids leaking which links
// were ever valid. ErrTokenExpired is kept distinct so a user knows a resend
// will help.
//
// Nothing in this package retries on its own; resends are user-initiated.
//
// # Related Packages
//
//   - pkg/account - signup calls Begin after creating the account
//   - pkg/notification - delivery of the verification email
package emailverification
