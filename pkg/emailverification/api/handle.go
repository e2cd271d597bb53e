package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/simple-contacts/pkg/emailverification"
)

// Handler exposes the email verification endpoints
type Handler struct {
	service *emailverification.EmailVerificationService
}

// NewHandler creates a new email verification API handler
func NewHandler(service *emailverification.EmailVerificationService) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers the verification routes on the given router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/verify/{token}", h.VerifyEmail)
	r.Post("/verify", h.ResendVerification)
}

// VerifyEmail handles GET /verify/{token}
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Token is required"})
		return
	}

	err := h.service.Verify(r.Context(), token)
	if err != nil {
		status := http.StatusBadRequest
		message := "Failed to verify email"

		switch {
		case errors.Is(err, emailverification.ErrMalformedToken):
			status = http.StatusBadRequest
			message = "Invalid verification link"
		case errors.Is(err, emailverification.ErrTokenExpired):
			status = http.StatusBadRequest
			message = "Verification link has expired"
		case errors.Is(err, emailverification.ErrAccountNotFound):
			status = http.StatusNotFound
			message = "User not found"
		default:
			slog.Error("Failed to verify email", "error", err)
			status = http.StatusInternalServerError
			message = "An error occurred while verifying email"
		}

		render.Status(r, status)
		render.JSON(w, r, ErrorResponse{Error: message})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, VerifyEmailResponse{
		Message: "Verification successful",
	})
}

// ResendVerification handles POST /verify
func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req ResendVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Email == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Missing required field email"})
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "Invalid email address"})
		return
	}

	err := h.service.Resend(r.Context(), req.Email)
	if err != nil {
		status := http.StatusBadRequest
		message := "Failed to send verification email"

		switch {
		case errors.Is(err, emailverification.ErrAccountNotFound):
			status = http.StatusNotFound
			message = "User not found"
		case errors.Is(err, emailverification.ErrAlreadyVerified):
			status = http.StatusBadRequest
			message = "Verification has already been passed"
		default:
			slog.Error("Failed to resend verification email", "error", err)
			status = http.StatusInternalServerError
			message = "An error occurred while sending verification email"
		}

		render.Status(r, status)
		render.JSON(w, r, ErrorResponse{Error: message})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, ResendVerificationResponse{
		Message: "Verification email sent",
	})
}
