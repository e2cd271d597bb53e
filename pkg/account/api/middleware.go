package api

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/tendant/simple-contacts/pkg/account"
)

type contextKey string

const accountContextKey contextKey = "authenticated_account"

// AccountFromContext returns the authenticated account stored by Authenticator.
func AccountFromContext(ctx context.Context) (*account.Account, bool) {
	acct, ok := ctx.Value(accountContextKey).(*account.Account)
	return acct, ok
}

// Verifier seeks, verifies and validates the JWT from the Authorization header.
func (h *Handler) Verifier(next http.Handler) http.Handler {
	return jwtauth.Verify(h.jwtAuth, jwtauth.TokenFromHeader)(next)
}

// Authenticator loads the account named by the token claims and rejects the
// request unless the presented token matches the stored session token. A
// token issued before logout is no longer accepted even if unexpired.
func (h *Handler) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			unauthorized(w, r)
			return
		}

		id, ok := claims["id"].(string)
		if !ok {
			unauthorized(w, r)
			return
		}
		accountID, err := uuid.Parse(id)
		if err != nil {
			unauthorized(w, r)
			return
		}

		acct, err := h.service.Get(r.Context(), accountID)
		if err != nil {
			unauthorized(w, r)
			return
		}

		token := jwtauth.TokenFromHeader(r)
		if acct.SessionToken == "" || acct.SessionToken != token {
			unauthorized(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, acct)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, ErrorResponse{Error: "Not authorized"})
}
