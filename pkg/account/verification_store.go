package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/tendant/simple-contacts/pkg/emailverification"
)

// emailverification.Repository implementation on the in-memory store. The
// Mongo repositories of the two packages share the accounts collection; this
// adapter shares the in-memory records the same way.

func (r *InMemRepository) IssueToken(ctx context.Context, accountID uuid.UUID, encodedToken string) error {
	err := r.update(accountID, func(acct *Account) {
		token := encodedToken
		acct.VerificationToken = &token
	})
	if err != nil {
		return emailverification.ErrNotFound
	}
	return nil
}

func (r *InMemRepository) FindByToken(ctx context.Context, encodedToken string) (*emailverification.AccountStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, acct := range r.accounts {
		if acct.VerificationToken != nil && *acct.VerificationToken == encodedToken {
			return toStatus(acct), nil
		}
	}
	return nil, emailverification.ErrAccountNotFound
}

func (r *InMemRepository) FindByEmail(ctx context.Context, email string) (*emailverification.AccountStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, acct := range r.accounts {
		if acct.Email == email {
			return toStatus(acct), nil
		}
	}
	return nil, emailverification.ErrAccountNotFound
}

func (r *InMemRepository) MarkVerified(ctx context.Context, accountID uuid.UUID) error {
	err := r.update(accountID, func(acct *Account) {
		acct.Verified = true
		acct.VerificationToken = nil
	})
	if err != nil {
		return emailverification.ErrNotFound
	}
	return nil
}

func toStatus(acct *Account) *emailverification.AccountStatus {
	status := &emailverification.AccountStatus{
		ID:       acct.ID,
		Email:    acct.Email,
		Verified: acct.Verified,
	}
	if acct.VerificationToken != nil {
		token := *acct.VerificationToken
		status.VerificationToken = &token
	}
	return status
}
