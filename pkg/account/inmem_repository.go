package account

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemRepository is an in-memory Repository used in tests and local
// development.
type InMemRepository struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*Account
}

// NewInMemRepository creates a new in-memory account repository.
func NewInMemRepository() *InMemRepository {
	return &InMemRepository{
		accounts: make(map[uuid.UUID]*Account),
	}
}

func (r *InMemRepository) Create(ctx context.Context, acct *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == acct.Email {
			return ErrEmailInUse
		}
	}

	now := time.Now().UTC()
	acct.CreatedAt = now
	acct.UpdatedAt = now

	copied := *acct
	r.accounts[acct.ID] = &copied
	return nil
}

func (r *InMemRepository) GetByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[id]
	if !ok {
		return nil, ErrAccountNotFound
	}
	copied := *acct
	return &copied, nil
}

func (r *InMemRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, acct := range r.accounts {
		if acct.Email == email {
			copied := *acct
			return &copied, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *InMemRepository) UpdateSessionToken(ctx context.Context, id uuid.UUID, token string) error {
	return r.update(id, func(acct *Account) {
		acct.SessionToken = token
	})
}

func (r *InMemRepository) UpdateSubscription(ctx context.Context, id uuid.UUID, subscription Subscription) error {
	return r.update(id, func(acct *Account) {
		acct.Subscription = subscription
	})
}

func (r *InMemRepository) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	return r.update(id, func(acct *Account) {
		acct.AvatarURL = avatarURL
	})
}

func (r *InMemRepository) update(id uuid.UUID, fn func(*Account)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[id]
	if !ok {
		return ErrAccountNotFound
	}
	fn(acct)
	acct.UpdatedAt = time.Now().UTC()
	return nil
}
