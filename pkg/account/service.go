package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tendant/simple-contacts/pkg/avatar"
	"github.com/tendant/simple-contacts/pkg/emailverification"
	"github.com/tendant/simple-contacts/pkg/tokengenerator"
)

// AccountService handles signup, login and account maintenance.
type AccountService struct {
	repo                Repository
	hasher              PasswordHasher
	tokenGenerator      tokengenerator.TokenGenerator
	verificationService *emailverification.EmailVerificationService
}

// AccountServiceOption defines configuration options
type AccountServiceOption func(*AccountService)

// WithPasswordHasher overrides the default bcrypt hasher
func WithPasswordHasher(hasher PasswordHasher) AccountServiceOption {
	return func(s *AccountService) {
		s.hasher = hasher
	}
}

// WithTokenGenerator sets the session token generator used at login
func WithTokenGenerator(tg tokengenerator.TokenGenerator) AccountServiceOption {
	return func(s *AccountService) {
		s.tokenGenerator = tg
	}
}

// WithVerificationService sets the email verification service invoked on signup
func WithVerificationService(vs *emailverification.EmailVerificationService) AccountServiceOption {
	return func(s *AccountService) {
		s.verificationService = vs
	}
}

// NewAccountService creates a new account service
func NewAccountService(repo Repository, opts ...AccountServiceOption) *AccountService {
	service := &AccountService{
		repo:   repo,
		hasher: &BcryptHasher{},
	}

	for _, opt := range opts {
		opt(service)
	}

	return service
}

// Signup registers a new account: hashes the password, assigns a gravatar
// avatar, persists the account and starts email verification. A failure to
// deliver the verification email is not fatal; the user can request a resend.
func (s *AccountService) Signup(ctx context.Context, email, password string) (*Account, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := &Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Subscription: SubscriptionStarter,
		AvatarURL:    avatar.GravatarURL(email),
	}

	if err := s.repo.Create(ctx, acct); err != nil {
		return nil, err
	}

	if s.verificationService != nil {
		token, err := s.verificationService.Begin(ctx, acct.ID, acct.Email)
		if err != nil {
			// The account exists; verification can be retried via resend.
			slog.Error("Failed to begin email verification", "account_id", acct.ID, "error", err)
		} else {
			acct.VerificationToken = &token
		}
	}

	slog.Info("Account created", "account_id", acct.ID)
	return acct, nil
}

// Login authenticates an account by email and password and issues a session
// token. Unknown email and wrong password are reported identically.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *Account, error) {
	acct, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := s.hasher.Verify(password, acct.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return "", nil, ErrInvalidCredentials
	}

	if s.tokenGenerator == nil {
		return "", nil, fmt.Errorf("token generator not configured")
	}

	token, _, err := s.tokenGenerator.GenerateToken(acct.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.repo.UpdateSessionToken(ctx, acct.ID, token); err != nil {
		return "", nil, err
	}

	acct.SessionToken = token
	slog.Info("Account logged in", "account_id", acct.ID)
	return token, acct, nil
}

// Logout clears the account's session token.
func (s *AccountService) Logout(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateSessionToken(ctx, id, "")
}

// Get returns the account with the given id.
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateSubscription changes the account's subscription tier.
func (s *AccountService) UpdateSubscription(ctx context.Context, id uuid.UUID, subscription Subscription) (*Account, error) {
	if !subscription.Valid() {
		return nil, ErrInvalidSubscription
	}

	if err := s.repo.UpdateSubscription(ctx, id, subscription); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// UpdateAvatar stores the account's new avatar URL.
func (s *AccountService) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	return s.repo.UpdateAvatar(ctx, id, avatarURL)
}
