package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-contacts/pkg/emailverification"
)

func setupHandler(t *testing.T) (*emailverification.InMemRepository, *emailverification.EmailVerificationService, http.Handler) {
	t.Helper()

	repo := emailverification.NewInMemRepository()
	service := emailverification.NewEmailVerificationService(repo, nil, "http://localhost:3000")

	r := chi.NewRouter()
	NewHandler(service).RegisterRoutes(r)

	return repo, service, r
}

func TestVerifyEmail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, service, router := setupHandler(t)
		accountID := uuid.New()
		repo.AddAccount(emailverification.AccountStatus{ID: accountID, Email: "user@example.com"})

		encoded, err := service.Begin(context.Background(), accountID, "user@example.com")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify/"+encoded, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Verification successful")
	})

	t.Run("MalformedToken", func(t *testing.T) {
		_, _, router := setupHandler(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify/not-a-real-token", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid verification link")
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		repo := emailverification.NewInMemRepository()
		clock := time.UnixMilli(0).UTC()
		service := emailverification.NewEmailVerificationService(repo, nil, "http://localhost:3000",
			emailverification.WithClock(func() time.Time { return clock }),
		)

		r := chi.NewRouter()
		NewHandler(service).RegisterRoutes(r)

		accountID := uuid.New()
		repo.AddAccount(emailverification.AccountStatus{ID: accountID, Email: "user@example.com"})
		encoded, err := service.Begin(context.Background(), accountID, "user@example.com")
		require.NoError(t, err)

		clock = clock.Add(2 * time.Hour)

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify/"+encoded, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Verification link has expired")
	})

	t.Run("UnknownToken", func(t *testing.T) {
		_, _, router := setupHandler(t)

		token, err := emailverification.Generate(time.Hour)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/verify/"+token.Encode(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
	})
}

func TestResendVerification(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, _, router := setupHandler(t)
		repo.AddAccount(emailverification.AccountStatus{ID: uuid.New(), Email: "user@example.com"})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(`{"email":"user@example.com"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Verification email sent")
	})

	t.Run("AlreadyVerified", func(t *testing.T) {
		repo, _, router := setupHandler(t)
		repo.AddAccount(emailverification.AccountStatus{ID: uuid.New(), Email: "user@example.com", Verified: true})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(`{"email":"user@example.com"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Verification has already been passed")
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, _, router := setupHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(`{"email":"ghost@example.com"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		_, _, router := setupHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(`{}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing required field email")
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		_, _, router := setupHandler(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(`{"email":"not-an-email"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid email address")
	})
}
