package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tendant/simple-contacts/pkg/contact"
)

type Handler struct {
	service *contact.ContactService
}

func NewHandler(service *contact.ContactService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.ListContacts)
	r.Post("/", h.CreateContact)
	r.Get("/{contactID}", h.GetContact)
	r.Put("/{contactID}", h.UpdateContact)
	r.Patch("/{contactID}/favorite", h.UpdateFavorite)
	r.Delete("/{contactID}", h.DeleteContact)
}

// ListContacts handles GET / with optional page, limit and favorite query
// parameters.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	params := contact.ListParams{}

	if v := r.URL.Query().Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			badRequest(w, r, "Invalid page parameter")
			return
		}
		params.Page = page
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			badRequest(w, r, "Invalid limit parameter")
			return
		}
		params.Limit = limit
	}
	if v := r.URL.Query().Get("favorite"); v != "" {
		favorite, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(w, r, "Invalid favorite parameter")
			return
		}
		params.Favorite = &favorite
	}

	contacts, err := h.service.List(r.Context(), params)
	if err != nil {
		slog.Error("Failed to list contacts", "error", err)
		internalError(w, r)
		return
	}

	resp := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		resp = append(resp, toContactResponse(&contacts[i]))
	}
	render.JSON(w, r, resp)
}

// GetContact handles GET /{contactID}
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toContactResponse(c))
}

// CreateContact handles POST /
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}

	c, err := h.service.Create(r.Context(), contact.ContactParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: req.Favorite,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toContactResponse(c))
}

// UpdateContact handles PUT /{contactID}
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	var req ContactRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}

	c, err := h.service.Update(r.Context(), id, contact.ContactParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Favorite: req.Favorite,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toContactResponse(c))
}

// UpdateFavorite handles PATCH /{contactID}/favorite
func (h *Handler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	var req FavoriteRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}
	if req.Favorite == nil {
		badRequest(w, r, "Missing field favorite")
		return
	}

	c, err := h.service.UpdateFavorite(r.Context(), id, *req.Favorite)
	if err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, toContactResponse(c))
}

// DeleteContact handles DELETE /{contactID}
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}
	render.JSON(w, r, map[string]string{"message": "contact deleted"})
}

func contactID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "contactID"))
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "Not found"})
		return uuid.Nil, false
	}
	return id, true
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, contact.ErrContactNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "Not found"})
	case errors.Is(err, contact.ErrInvalidContact):
		badRequest(w, r, err.Error())
	default:
		slog.Error("Contact operation failed", "error", err)
		internalError(w, r)
	}
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ErrorResponse{Error: msg})
}

func internalError(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, ErrorResponse{Error: "Internal server error"})
}
