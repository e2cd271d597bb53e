package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// ContactService implements the contact book operations on top of a
// Repository.
type ContactService struct {
	repo Repository
}

func NewContactService(repo Repository) *ContactService {
	return &ContactService{repo: repo}
}

// ContactParams carries the caller-supplied fields of a contact.
type ContactParams struct {
	Name     string
	Email    string
	Phone    string
	Favorite bool
}

func (p ContactParams) validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing required field name", ErrInvalidContact)
	}
	if p.Email == "" {
		return fmt.Errorf("%w: missing required field email", ErrInvalidContact)
	}
	if p.Phone == "" {
		return fmt.Errorf("%w: missing required field phone", ErrInvalidContact)
	}
	return nil
}

func (s *ContactService) Create(ctx context.Context, params ContactParams) (*Contact, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	c := &Contact{
		ID:       uuid.New(),
		Name:     params.Name,
		Email:    params.Email,
		Phone:    params.Phone,
		Favorite: params.Favorite,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	slog.Info("Contact created", "contact_id", c.ID)
	return c, nil
}

func (s *ContactService) Get(ctx context.Context, id uuid.UUID) (*Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContactService) List(ctx context.Context, params ListParams) ([]Contact, error) {
	return s.repo.List(ctx, params)
}

// Update replaces all caller-supplied fields of an existing contact.
func (s *ContactService) Update(ctx context.Context, id uuid.UUID, params ContactParams) (*Contact, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	c := &Contact{
		ID:       id,
		Name:     params.Name,
		Email:    params.Email,
		Phone:    params.Phone,
		Favorite: params.Favorite,
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactService) UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*Contact, error) {
	return s.repo.UpdateFavorite(ctx, id, favorite)
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Contact deleted", "contact_id", id)
	return nil
}
