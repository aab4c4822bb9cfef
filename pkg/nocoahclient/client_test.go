package nocoahclient_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoahclient"
)

// clearCredentialEnv blanks every credential variable so a developer's
// real environment never leaks into the test.
func clearCredentialEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"API_USER", "API_PASS", "TENANT_ID", "REGION", "PUBLIC_CLOUD"} {
		t.Setenv("NOCOAH_"+key, "")
		t.Setenv("CONOHA_"+key, "")
	}

	t.Setenv("HOME", t.TempDir())
}

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	client, err := nocoahclient.New(context.Background(), nil)
	require.ErrorIs(t, err, nocoah.ErrConfigRequired)
	assert.Nil(t, client)
}

func TestNewFromEnv_NoSource(t *testing.T) {
	clearCredentialEnv(t)

	client, err := nocoahclient.NewFromEnv(context.Background())
	require.ErrorIs(t, err, nocoah.ErrNoCredentialSource)
	assert.Nil(t, client)
}

func TestNewWithIdentity(t *testing.T) {
	t.Parallel()

	credentials := &nocoah.Credentials{
		User:     "api-user",
		Password: "api-pass",
		TenantID: "tenant-1",
		Region:   "tyo1",
	}

	t.Run("skips resolution and the identity exchange", func(t *testing.T) {
		t.Parallel()

		expiresAt := time.Now().Add(time.Hour)

		client, err := nocoahclient.NewWithIdentity(&nocoah.Config{}, credentials, "issued-token", expiresAt)
		require.NoError(t, err)

		token, err := client.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "issued-token", token)
		assert.True(t, client.TokenAvailable())
		assert.NotNil(t, client.ObjectStorage())
	})

	t.Run("expired token is still returned but unavailable", func(t *testing.T) {
		t.Parallel()

		client, err := nocoahclient.NewWithIdentity(&nocoah.Config{}, credentials, "stale-token", time.Now().Add(-time.Hour))
		require.NoError(t, err)

		token, err := client.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "stale-token", token)
		assert.False(t, client.TokenAvailable())
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := nocoahclient.NewWithIdentity(nil, credentials, "issued-token", time.Now())
		require.ErrorIs(t, err, nocoah.ErrConfigRequired)
	})

	t.Run("incomplete credentials", func(t *testing.T) {
		t.Parallel()

		_, err := nocoahclient.NewWithIdentity(&nocoah.Config{}, &nocoah.Credentials{User: "only-user"}, "issued-token", time.Now())
		require.ErrorIs(t, err, nocoah.ErrCredentialsEmpty)
	})
}

func TestNewWithConfigFile_Malformed(t *testing.T) {
	clearCredentialEnv(t)

	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	client, err := nocoahclient.NewWithConfigFile(context.Background(), path)
	require.ErrorIs(t, err, nocoah.ErrMalformedConfig)
	assert.Nil(t, client)
}

func TestNewWithConfigFile_MissingField(t *testing.T) {
	clearCredentialEnv(t)

	path := filepath.Join(t.TempDir(), "config")
	content := `{"api_user": "user", "api_pass": "pass", "tenant_id": "tenant", "public_cloud": "conoha"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	client, err := nocoahclient.NewWithConfigFile(context.Background(), path)
	require.ErrorIs(t, err, nocoah.ErrMissingConfigField)
	assert.Contains(t, err.Error(), "region")
	assert.Nil(t, client)
}
