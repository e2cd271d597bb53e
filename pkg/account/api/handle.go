package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-contacts/pkg/account"
	"github.com/tendant/simple-contacts/pkg/avatar"
)

const maxAvatarSize = 10 << 20 // 10 MiB

type Handler struct {
	service *account.AccountService
	avatars *avatar.Processor
	jwtAuth *jwtauth.JWTAuth
}

func NewHandler(service *account.AccountService, avatars *avatar.Processor, jwtAuth *jwtauth.JWTAuth) *Handler {
	return &Handler{
		service: service,
		avatars: avatars,
		jwtAuth: jwtAuth,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.Verifier)
		r.Use(h.Authenticator)
		r.Post("/logout", h.Logout)
		r.Get("/current", h.Current)
		r.Patch("/", h.UpdateSubscription)
		r.Patch("/avatars", h.UpdateAvatar)
	})
}

// Signup handles POST /signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		badRequest(w, r, "Invalid email address")
		return
	}
	if len(req.Password) < 6 {
		badRequest(w, r, "Password must be at least 6 characters")
		return
	}

	acct, err := h.service.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrEmailInUse) {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, ErrorResponse{Error: "Email in Use"})
			return
		}
		slog.Error("Failed to create account", "error", err)
		internalError(w, r)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, SignupResponse{User: toUserResponse(acct)})
}

// Login handles POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		badRequest(w, r, "Email and password are required")
		return
	}

	token, acct, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, ErrorResponse{Error: "Email or password is wrong"})
			return
		}
		slog.Error("Failed to log in", "error", err)
		internalError(w, r)
		return
	}

	render.JSON(w, r, LoginResponse{Token: token, User: toUserResponse(acct)})
}

// Logout handles POST /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	acct, ok := AccountFromContext(r.Context())
	if !ok {
		unauthorized(w, r)
		return
	}

	if err := h.service.Logout(r.Context(), acct.ID); err != nil {
		slog.Error("Failed to log out", "account_id", acct.ID, "error", err)
		internalError(w, r)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Current handles GET /current
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	acct, ok := AccountFromContext(r.Context())
	if !ok {
		unauthorized(w, r)
		return
	}

	render.JSON(w, r, toUserResponse(acct))
}

// UpdateSubscription handles PATCH /
func (h *Handler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	acct, ok := AccountFromContext(r.Context())
	if !ok {
		unauthorized(w, r)
		return
	}

	var req SubscriptionUpdateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateSubscription(r.Context(), acct.ID, account.Subscription(req.Subscription))
	if err != nil {
		if errors.Is(err, account.ErrInvalidSubscription) {
			badRequest(w, r, "Invalid subscription type")
			return
		}
		slog.Error("Failed to update subscription", "account_id", acct.ID, "error", err)
		internalError(w, r)
		return
	}

	render.JSON(w, r, toUserResponse(updated))
}

// UpdateAvatar handles PATCH /avatars with a multipart "avatar" file.
func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	acct, ok := AccountFromContext(r.Context())
	if !ok {
		unauthorized(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize)
	file, header, err := r.FormFile("avatar")
	if err != nil {
		badRequest(w, r, "Avatar file is required")
		return
	}
	defer file.Close()

	avatarURL, err := h.avatars.Save(acct.ID.String(), header.Filename, file)
	if err != nil {
		badRequest(w, r, "Invalid image file")
		return
	}

	if err := h.service.UpdateAvatar(r.Context(), acct.ID, avatarURL); err != nil {
		slog.Error("Failed to update avatar", "account_id", acct.ID, "error", err)
		internalError(w, r)
		return
	}

	render.JSON(w, r, AvatarResponse{AvatarURL: avatarURL})
}

func toUserResponse(acct *account.Account) UserResponse {
	return UserResponse{
		Email:        acct.Email,
		Subscription: string(acct.Subscription),
		AvatarURL:    acct.AvatarURL,
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
