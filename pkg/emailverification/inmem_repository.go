package emailverification

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// InMemRepository is an in-memory Repository used in tests. It counts token
// lookups so tests can assert that expired tokens never reach the store.
type InMemRepository struct {
	mu          sync.Mutex
	accounts    map[uuid.UUID]*AccountStatus
	lookupCalls int
}

// NewInMemRepository creates a new in-memory verification repository.
func NewInMemRepository() *InMemRepository {
	return &InMemRepository{
		accounts: make(map[uuid.UUID]*AccountStatus),
	}
}

// AddAccount seeds an account record.
func (r *InMemRepository) AddAccount(status AccountStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := status
	r.accounts[status.ID] = &copied
}

// Account returns a snapshot of the stored record, for test assertions.
func (r *InMemRepository) Account(id uuid.UUID) (AccountStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acct, ok := r.accounts[id]
	if !ok {
		return AccountStatus{}, false
	}
	return *acct, true
}

// LookupCalls returns how many times FindByToken has been called.
func (r *InMemRepository) LookupCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookupCalls
}

func (r *InMemRepository) IssueToken(ctx context.Context, accountID uuid.UUID, encodedToken string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[accountID]
	if !ok {
		return ErrNotFound
	}

	token := encodedToken
	acct.VerificationToken = &token
	return nil
}

func (r *InMemRepository) FindByToken(ctx context.Context, encodedToken string) (*AccountStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lookupCalls++
	for _, acct := range r.accounts {
		if acct.VerificationToken != nil && *acct.VerificationToken == encodedToken {
			copied := *acct
			return &copied, nil
		}
	}
	return nil, ErrAccountNotFound
}

func (r *InMemRepository) FindByEmail(ctx context.Context, email string) (*AccountStatus, error) {
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

func (r *InMemRepository) MarkVerified(ctx context.Context, accountID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, ok := r.accounts[accountID]
	if !ok {
		return ErrNotFound
	}

	acct.Verified = true
	acct.VerificationToken = nil
	return nil
}
