package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rioharsa/storefront-gateway/internal/dto"
	"github.com/rioharsa/storefront-gateway/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var payload dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "admin@example.com", payload.Email)

		w.Write([]byte(`{"token": "jwt-abc", "user": {"id": "u1", "email": "admin@example.com"}}`))
	}))
	defer upstream.Close()

	repo := CreateUpstreamAuthRepository(upstream.URL)

	token, profile, err := repo.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
	assert.Equal(t, "u1", profile.ID)
}

func TestLogin_RejectionPassedThroughVerbatim(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Account is locked, contact support"}`))
	}))
	defer upstream.Close()

	repo := CreateUpstreamAuthRepository(upstream.URL)

	_, _, err := repo.Login(context.Background(), dto.LoginRequest{Email: "x@example.com", Password: "pw"})
	require.Error(t, err)

	assert.Equal(t, "Account is locked, contact support", err.Error())
	assert.Equal(t, http.StatusUnauthorized, errs.GetErrorStatusCode(err))
}

func TestRegister_CreatedStatusAccepted(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"user": {"id": "u2", "email": "new@example.com"}}`))
	}))
	defer upstream.Close()

	repo := CreateUpstreamAuthRepository(upstream.URL)

	profile, err := repo.Register(context.Background(), dto.RegisterRequest{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "u2", profile.ID)
}

func TestGetProfile_ForwardsBearerToken(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer jwt-abc", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id": "u1", "email": "admin@example.com"}`))
	}))
	defer upstream.Close()

	repo := CreateUpstreamAuthRepository(upstream.URL)

	profile, err := repo.GetProfile(context.Background(), "jwt-abc")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", profile.Email)
}

func TestGetProfile_RejectedCredential(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer upstream.Close()

	repo := CreateUpstreamAuthRepository(upstream.URL)

	_, err := repo.GetProfile(context.Background(), "stale-token")
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}
