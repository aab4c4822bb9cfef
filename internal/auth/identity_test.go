package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nia-TN1012/nocoah-sub000/internal/auth"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

func testCredentials() *nocoah.Credentials {
	return &nocoah.Credentials{
		User:     "test-user",
		Password: "test-pass",
		TenantID: "tenant-1",
		Region:   "tyo1",
		Provider: nocoah.ProviderConoHa,
	}
}

func TestIdentity_Authenticate(t *testing.T) {
	t.Parallel()

	t.Run("stores token and expiry from the identity response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tokens", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body struct {
				Auth struct {
					PasswordCredentials struct {
						Username string `json:"username"`
						Password string `json:"password"`
					} `json:"passwordCredentials"`
					TenantID string `json:"tenantId"`
				} `json:"auth"`
			}

			require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "test-user", body.Auth.PasswordCredentials.Username)
			assert.Equal(t, "test-pass", body.Auth.PasswordCredentials.Password)
			assert.Equal(t, "tenant-1", body.Auth.TenantID)

			_, _ = writer.Write([]byte(`{"access":{"token":{"id":"abc123","expires":"2099-01-01T00:00:00Z"}}}`))
		}))
		defer server.Close()

		identity := auth.NewIdentity(testCredentials(), server.URL, http.DefaultClient)
		require.NoError(t, identity.Authenticate(context.Background()))

		token, err := identity.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "abc123", token)
		assert.True(t, identity.Available())
		assert.Equal(t, 2099, identity.ExpiresAt().Year())
	})

	t.Run("rejected credentials surface the status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		identity := auth.NewIdentity(testCredentials(), server.URL, http.DefaultClient)
		err := identity.Authenticate(context.Background())
		require.Error(t, err)

		apiErr := &nocoah.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.True(t, nocoah.IsUnauthorized(err))
	})

	t.Run("response without token id", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"access":{"token":{"expires":"2099-01-01T00:00:00Z"}}}`))
		}))
		defer server.Close()

		identity := auth.NewIdentity(testCredentials(), server.URL, http.DefaultClient)
		assert.ErrorIs(t, identity.Authenticate(context.Background()), auth.ErrNoTokenInResponse)
	})

	t.Run("response without expiry", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"access":{"token":{"id":"abc123"}}}`))
		}))
		defer server.Close()

		identity := auth.NewIdentity(testCredentials(), server.URL, http.DefaultClient)
		assert.ErrorIs(t, identity.Authenticate(context.Background()), auth.ErrNoExpiryInResponse)
	})

	t.Run("unreachable identity service is a transport error", func(t *testing.T) {
		t.Parallel()

		identity := auth.NewIdentity(testCredentials(), "http://127.0.0.1:1", http.DefaultClient)
		err := identity.Authenticate(context.Background())
		require.Error(t, err)
		assert.True(t, nocoah.IsTransport(err))
	})
}

func TestIdentity_GetToken(t *testing.T) {
	t.Parallel()

	t.Run("before authentication", func(t *testing.T) {
		t.Parallel()

		identity := auth.NewIdentity(testCredentials(), "http://identity.invalid", http.DefaultClient)
		_, err := identity.GetToken(context.Background())
		assert.ErrorIs(t, err, nocoah.ErrNotAuthenticated)
	})

	t.Run("expired token is still returned without a refresh", func(t *testing.T) {
		t.Parallel()

		identity := auth.NewIdentity(testCredentials(), "http://identity.invalid", http.DefaultClient)
		identity.SetToken("stale-token", time.Now().Add(-1*time.Minute))

		token, err := identity.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "stale-token", token)
		assert.False(t, identity.Available())
	})
}

func TestIdentity_Available(t *testing.T) {
	t.Parallel()

	identity := auth.NewIdentity(testCredentials(), "http://identity.invalid", http.DefaultClient)
	assert.False(t, identity.Available())

	identity.SetToken("token", time.Now().Add(1*time.Hour))
	assert.True(t, identity.Available())

	identity.SetToken("token", time.Now().Add(-1*time.Second))
	assert.False(t, identity.Available())
}
