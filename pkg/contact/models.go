package contact

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents a single address book entry.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Favorite  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListParams controls pagination and filtering of contact listings.
// A nil Favorite means no favorite filter.
type ListParams struct {
	Page     int
	Limit    int
	Favorite *bool
}

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Normalize clamps the params to sane values.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}
