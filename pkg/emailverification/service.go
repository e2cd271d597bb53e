package emailverification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tendant/simple-contacts/pkg/notification"
)

// EmailVerificationService drives the verification token lifecycle: issuing
// tokens on signup and resend, and interpreting presented tokens against the
// current time and account state.
type EmailVerificationService struct {
	repo                Repository
	notificationManager *notification.NotificationManager
	baseURL             string
	tokenExpiry         time.Duration
	now                 func() time.Time
}

// EmailVerificationServiceOption defines configuration options
type EmailVerificationServiceOption func(*EmailVerificationService)

// WithTokenExpiry sets the token expiration duration
func WithTokenExpiry(expiry time.Duration) EmailVerificationServiceOption {
	return func(s *EmailVerificationService) {
		s.tokenExpiry = expiry
	}
}

// WithClock sets the time source. Used in tests.
func WithClock(now func() time.Time) EmailVerificationServiceOption {
	return func(s *EmailVerificationService) {
		s.now = now
	}
}

// NewEmailVerificationService creates a new email verification service
func NewEmailVerificationService(
	repo Repository,
	notificationManager *notification.NotificationManager,
	baseURL string,
	opts ...EmailVerificationServiceOption,
) *EmailVerificationService {
	service := &EmailVerificationService{
		repo:                repo,
		notificationManager: notificationManager,
		baseURL:             baseURL,
		tokenExpiry:         1 * time.Hour,
		now:                 func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// Begin issues the initial verification token for a freshly created,
// unverified account and dispatches the verification email. The returned
// string is the encoded token. Mail transport failure is logged, not
// returned: the token is already persisted and a resend remains available.
func (s *EmailVerificationService) Begin(ctx context.Context, accountID uuid.UUID, email string) (string, error) {
	return s.issueToken(ctx, accountID, email)
}

// Resend replaces the account's pending token with a fresh one and sends a
// new verification email. The verified flag is authoritative and checked
// before any token work: resending for a verified account is rejected with
// ErrAlreadyVerified without generating a token or invoking the dispatcher.
func (s *EmailVerificationService) Resend(ctx context.Context, email string) error {
	acct, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		slog.Error("Failed to find account for resend", "error", err)
		return err
	}

	if acct.Verified {
		slog.Info("Email already verified", "account_id", acct.ID)
		return ErrAlreadyVerified
	}

	_, err = s.issueToken(ctx, acct.ID, acct.Email)
	return err
}

// Verify interprets a presented token string and, when it is live and held by
// an unverified account, transitions that account to verified and consumes
// the token. Expiry is self-contained in the token: an expired token fails
// fast without a store lookup.
func (s *EmailVerificationService) Verify(ctx context.Context, encodedToken string) error {
	token, err := ParseToken(encodedToken)
	if err != nil {
		return err
	}

	if token.Expired(s.now()) {
		slog.Warn("Token expired", "expires_at", token.ExpiresAt)
		return ErrTokenExpired
	}

	acct, err := s.repo.FindByToken(ctx, encodedToken)
	if err != nil {
		return err
	}

	// A verified account holds no token, so this lookup cannot match one.
	// Kept as a guard; reported the same as an unknown token.
	if acct.Verified {
		return ErrAccountNotFound
	}

	if err := s.repo.MarkVerified(ctx, acct.ID); err != nil {
		slog.Error("Failed to mark account verified", "account_id", acct.ID, "error", err)
		return fmt.Errorf("failed to mark account verified: %w", err)
	}

	slog.Info("Email verified successfully", "account_id", acct.ID)
	return nil
}

// issueToken generates a fresh token, persists it (superseding any pending
// one, latest write wins) and dispatches the verification email.
func (s *EmailVerificationService) issueToken(ctx context.Context, accountID uuid.UUID, email string) (string, error) {
	token, err := GenerateAt(s.now(), s.tokenExpiry)
	if err != nil {
		return "", err
	}

	encoded := token.Encode()
	if err := s.repo.IssueToken(ctx, accountID, encoded); err != nil {
		slog.Error("Failed to store verification token", "account_id", accountID, "error", err)
		return "", fmt.Errorf("failed to store verification token: %w", err)
	}

	verificationLink := fmt.Sprintf("%s/api/users/verify/%s", s.baseURL, encoded)
	if err := s.sendVerificationEmail(email, verificationLink); err != nil {
		// Best effort: the token is valid, the user can request a resend.
		slog.Warn("Failed to send verification email", "account_id", accountID, "error", err)
	}

	slog.Info("Verification token issued", "account_id", accountID, "expires_at", token.ExpiresAt)
	return encoded, nil
}

func (s *EmailVerificationService) sendVerificationEmail(email, verificationLink string) error {
	if s.notificationManager == nil {
		slog.Warn("Notification manager not configured, skipping email send")
		return nil
	}

	return s.notificationManager.Send(notification.EmailVerification, notification.EmailSystem, notification.NotificationData{
		To: email,
		Data: map[string]string{
			"VerificationLink": verificationLink,
			"ExpiryHours":      fmt.Sprintf("%.0f", s.tokenExpiry.Hours()),
		},
	})
}
