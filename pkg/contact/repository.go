package contact

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists contacts. Implementations return ErrContactNotFound
// when the named contact does not exist.
type Repository interface {
	Create(ctx context.Context, c *Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	// List returns contacts ordered by creation time, oldest first.
	List(ctx context.Context, params ListParams) ([]Contact, error)
	Update(ctx context.Context, c *Contact) error
	UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*Contact, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
