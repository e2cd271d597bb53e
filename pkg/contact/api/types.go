package api

import (
	"time"

	"github.com/tendant/simple-contacts/pkg/contact"
)

// ContactRequest represents the request body for creating or replacing a
// contact.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Favorite bool   `json:"favorite"`
}

// FavoriteRequest represents the request body for toggling the favorite flag.
type FavoriteRequest struct {
	Favorite *bool `json:"favorite"`
}

// ContactResponse represents a contact in responses
type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Favorite  bool      `json:"favorite"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func toContactResponse(c *contact.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Favorite:  c.Favorite,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
