package account

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-contacts/pkg/emailverification"
	"github.com/tendant/simple-contacts/pkg/tokengenerator"
)

func newTestService(t *testing.T) (*AccountService, *InMemRepository) {
	t.Helper()

	repo := NewInMemRepository()
	service := NewAccountService(repo,
		WithTokenGenerator(tokengenerator.NewJwtTokenGenerator("test-secret", "simple-contacts", "simple-contacts")),
	)
	return service, repo
}

func TestAccountService_Signup(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	acct, err := service.Signup(ctx, "user@example.com", "password123")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, acct.ID)
	assert.Equal(t, "user@example.com", acct.Email)
	assert.Equal(t, SubscriptionStarter, acct.Subscription)
	assert.False(t, acct.Verified)
	assert.Contains(t, acct.AvatarURL, "gravatar.com/avatar/")

	// Stored hash verifies against the original password
	stored, err := repo.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	hasher := &BcryptHasher{}
	ok, err := hasher.Verify("password123", stored.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEqual(t, "password123", stored.PasswordHash)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := service.Signup(ctx, "user@example.com", "otherpassword")
		assert.ErrorIs(t, err, ErrEmailInUse)
	})
}

func TestAccountService_SignupStartsVerification(t *testing.T) {
	ctx := context.Background()

	// The in-memory repository backs both the account store and the
	// verification token store, like the shared accounts collection does.
	repo := NewInMemRepository()
	verificationService := emailverification.NewEmailVerificationService(repo, nil, "http://localhost:3000")

	service := NewAccountService(repo,
		WithVerificationService(verificationService),
	)

	acct, err := service.Signup(ctx, "user@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, acct.VerificationToken)

	stored, err := repo.GetByID(ctx, acct.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.VerificationToken)
	assert.Equal(t, *acct.VerificationToken, *stored.VerificationToken)

	// The issued token completes the verification flow end to end
	require.NoError(t, verificationService.Verify(ctx, *acct.VerificationToken))

	stored, err = repo.GetByID(ctx, acct.ID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	assert.Nil(t, stored.VerificationToken)
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	_, err := service.Signup(ctx, "user@example.com", "password123")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		token, acct, err := service.Login(ctx, "user@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "user@example.com", acct.Email)

		// Session token persisted
		stored, err := repo.GetByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, token, stored.SessionToken)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, _, err := service.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, _, err := service.Login(ctx, "user@example.com", "wrongpassword")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAccountService_Logout(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	acct, err := service.Signup(ctx, "user@example.com", "password123")
	require.NoError(t, err)

	_, _, err = service.Login(ctx, "user@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, service.Logout(ctx, acct.ID))

	stored, err := repo.GetByID(ctx, acct.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.SessionToken)

	t.Run("UnknownAccount", func(t *testing.T) {
		err := service.Logout(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountService_UpdateSubscription(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(t)

	acct, err := service.Signup(ctx, "user@example.com", "password123")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		updated, err := service.UpdateSubscription(ctx, acct.ID, SubscriptionPro)
		require.NoError(t, err)
		assert.Equal(t, SubscriptionPro, updated.Subscription)
	})

	t.Run("InvalidTier", func(t *testing.T) {
		_, err := service.UpdateSubscription(ctx, acct.ID, Subscription("platinum"))
		assert.ErrorIs(t, err, ErrInvalidSubscription)
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		_, err := service.UpdateSubscription(ctx, uuid.New(), SubscriptionPro)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestAccountService_UpdateAvatar(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(t)

	acct, err := service.Signup(ctx, "user@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, service.UpdateAvatar(ctx, acct.ID, "/avatars/"+acct.ID.String()+".png"))

	stored, err := repo.GetByID(ctx, acct.ID)
	require.NoError(t, err)
	assert.Equal(t, "/avatars/"+acct.ID.String()+".png", stored.AvatarURL)
}

func TestBcryptHasher(t *testing.T) {
	hasher := &BcryptHasher{}

	t.Run("RoundTrip", func(t *testing.T) {
		hash, err := hasher.Hash("password123")
		require.NoError(t, err)

		ok, err := hasher.Verify("password123", hash)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = hasher.Verify("wrongpassword", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		_, err := hasher.Hash("")
		assert.Error(t, err)
	})
}
