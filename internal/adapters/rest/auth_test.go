package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/maelys-dev/sweetshop-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthAPILogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var gotBody map[string]string
		h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/login", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"token":"tok-1","user":{"id":7,"name":"Maya","email":"maya@example.com","role":"user"}}`))
		})
		api := NewAuthAPI(h.client)

		user, token, err := api.Login(ctx, "maya@example.com", "s3cret")
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"email": "maya@example.com", "password": "s3cret"}, gotBody)
		assert.Equal(t, "tok-1", token)
		assert.Equal(t, domain.UserID("7"), user.ID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		h := newHarness(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		api := NewAuthAPI(h.client)

		_, _, err := api.Login(ctx, "maya@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("missing token is a bad response", func(t *testing.T) {
		h := newHarness(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"user":{"id":"u-1"}}`))
		})
		api := NewAuthAPI(h.client)

		_, _, err := api.Login(ctx, "maya@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrBadResponse)
	})
}

func TestAuthAPIRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/users", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"u-2","name":"Maya","email":"maya@example.com"}`))
		})
		api := NewAuthAPI(h.client)

		user, err := api.Register(ctx, domain.Registration{Name: "Maya", Email: "maya@example.com", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, domain.UserID("u-2"), user.ID)
	})

	t.Run("conflict means the email is taken", func(t *testing.T) {
		h := newHarness(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"email exists"}`))
		})
		api := NewAuthAPI(h.client)

		_, err := api.Register(ctx, domain.Registration{Name: "Maya", Email: "maya@example.com", Password: "pw"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})
}

func TestAuthAPIChangePassword(t *testing.T) {
	var gotBody map[string]string
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/me/password", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	})
	h.token = "tok-1"
	api := NewAuthAPI(h.client)

	require.NoError(t, api.ChangePassword(context.Background(), "old", "new"))
	assert.Equal(t, map[string]string{"current_password": "old", "new_password": "new"}, gotBody)
}
