package contact

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemRepository is an in-memory Repository used in tests.
type InMemRepository struct {
	mu       sync.Mutex
	contacts map[uuid.UUID]*Contact
}

func NewInMemRepository() *InMemRepository {
	return &InMemRepository{contacts: make(map[uuid.UUID]*Contact)}
}

func (r *InMemRepository) Create(_ context.Context, c *Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	stored := *c
	r.contacts[c.ID] = &stored
	return nil
}

func (r *InMemRepository) GetByID(_ context.Context, id uuid.UUID) (*Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contacts[id]
	if !ok {
		return nil, ErrContactNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *InMemRepository) List(_ context.Context, params ListParams) ([]Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	params = params.Normalize()

	all := make([]Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		if params.Favorite != nil && c.Favorite != *params.Favorite {
			continue
		}
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID.String() < all[j].ID.String()
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	start := (params.Page - 1) * params.Limit
	if start >= len(all) {
		return []Contact{}, nil
	}
	end := start + params.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *InMemRepository) Update(_ context.Context, c *Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.contacts[c.ID]
	if !ok {
		return ErrContactNotFound
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	stored := *c
	r.contacts[c.ID] = &stored
	return nil
}

func (r *InMemRepository) UpdateFavorite(_ context.Context, id uuid.UUID, favorite bool) (*Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.contacts[id]
	if !ok {
		return nil, ErrContactNotFound
	}
	c.Favorite = favorite
	c.UpdatedAt = time.Now().UTC()
	copied := *c
	return &copied, nil
}

func (r *InMemRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.contacts[id]; !ok {
		return ErrContactNotFound
	}
	delete(r.contacts, id)
	return nil
}
