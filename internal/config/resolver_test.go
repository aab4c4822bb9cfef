package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nia-TN1012/nocoah-sub000/internal/config"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// clearEnv blanks both namespaces so a test only sees the sources it
// sets up itself.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, prefix := range []string{config.PrimaryEnvPrefix, config.SecondaryEnvPrefix} {
		for _, suffix := range []string{"API_USER", "API_PASS", "TENANT_ID", "REGION", "PUBLIC_CLOUD"} {
			t.Setenv(prefix+suffix, "")
		}
	}
}

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestResolve_ExplicitCredentials(t *testing.T) {
	clearEnv(t)

	creds, err := config.Resolve(config.Options{
		Credentials: &nocoah.Credentials{
			User:     "u",
			Password: "p",
			TenantID: "t1",
			Region:   "tyo1",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "u", creds.User)
	assert.Equal(t, nocoah.ProviderConoHa, creds.Provider)
}

func TestResolve_ExplicitCredentialsIncomplete(t *testing.T) {
	clearEnv(t)

	_, err := config.Resolve(config.Options{
		Credentials: &nocoah.Credentials{User: "u"},
	})
	assert.ErrorIs(t, err, nocoah.ErrCredentialsEmpty)
}

func TestResolve_ConfigFile(t *testing.T) {
	clearEnv(t)

	t.Run("valid file", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(),
			`{"api_user":"u","api_pass":"p","tenant_id":"t1","region":"tyo1","public_cloud":"conoha"}`)

		creds, err := config.Resolve(config.Options{ConfigPath: path})
		require.NoError(t, err)
		assert.Equal(t, "u", creds.User)
		assert.Equal(t, "p", creds.Password)
		assert.Equal(t, "t1", creds.TenantID)
		assert.Equal(t, "tyo1", creds.Region)
		assert.Equal(t, nocoah.ProviderConoHa, creds.Provider)
	})

	t.Run("missing region names the field", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(),
			`{"api_user":"u","api_pass":"p","tenant_id":"t1"}`)

		_, err := config.Resolve(config.Options{ConfigPath: path})
		require.Error(t, err)
		assert.ErrorIs(t, err, nocoah.ErrMissingConfigField)
		assert.Contains(t, err.Error(), "region")
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(), `{"api_user": `)

		_, err := config.Resolve(config.Options{ConfigPath: path})
		assert.ErrorIs(t, err, nocoah.ErrMalformedConfig)
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := config.Resolve(config.Options{ConfigPath: filepath.Join(t.TempDir(), "missing")})
		assert.ErrorIs(t, err, nocoah.ErrUnreadableConfig)
	})

	t.Run("unknown public cloud", func(t *testing.T) {
		path := writeConfigFile(t, t.TempDir(),
			`{"api_user":"u","api_pass":"p","tenant_id":"t1","region":"tyo1","public_cloud":"other"}`)

		_, err := config.Resolve(config.Options{ConfigPath: path})
		assert.ErrorIs(t, err, nocoah.ErrInvalidProvider)
	})
}

func TestResolve_AccountMap(t *testing.T) {
	clearEnv(t)

	t.Run("valid map", func(t *testing.T) {
		creds, err := config.Resolve(config.Options{Account: map[string]string{
			"api_user":  "u",
			"api_pass":  "p",
			"tenant_id": "t1",
			"region":    "tyo1",
		}})
		require.NoError(t, err)
		assert.Equal(t, nocoah.ProviderConoHa, creds.Provider)
		assert.Equal(t, "tyo1", creds.Region)
	})

	t.Run("missing key is fatal", func(t *testing.T) {
		_, err := config.Resolve(config.Options{Account: map[string]string{
			"api_user": "u",
			"api_pass": "p",
			"region":   "tyo1",
		}})
		require.Error(t, err)
		assert.ErrorIs(t, err, nocoah.ErrMissingConfigField)
		assert.Contains(t, err.Error(), "tenant_id")
	})
}

func TestResolve_PrimaryEnv(t *testing.T) {
	clearEnv(t)
	// A default config file exists but must never be consulted once the
	// environment satisfies resolution.
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".nocoah"), 0750))
	writeConfigFile(t, filepath.Join(home, ".nocoah"), `{"broken`)

	t.Setenv("NOCOAH_API_USER", "u")
	t.Setenv("NOCOAH_API_PASS", "p")
	t.Setenv("NOCOAH_TENANT_ID", "t1")
	t.Setenv("NOCOAH_REGION", "tyo1")
	t.Setenv("NOCOAH_PUBLIC_CLOUD", "conoha")

	creds, err := config.Resolve(config.Options{})
	require.NoError(t, err)
	assert.Equal(t, "u", creds.User)
	assert.Equal(t, "t1", creds.TenantID)
	assert.Equal(t, "tyo1", creds.Region)
	assert.Equal(t, nocoah.ProviderConoHa, creds.Provider)
}

func TestResolve_PrimaryEnvUnknownPublicCloud(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	// The namespace is complete, so it wins the precedence walk; an
	// unknown provider inside it is fatal, not a fallback.
	t.Setenv("NOCOAH_API_USER", "u")
	t.Setenv("NOCOAH_API_PASS", "p")
	t.Setenv("NOCOAH_TENANT_ID", "t1")
	t.Setenv("NOCOAH_REGION", "tyo1")
	t.Setenv("NOCOAH_PUBLIC_CLOUD", "other")

	_, err := config.Resolve(config.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, nocoah.ErrInvalidProvider)
	assert.Contains(t, err.Error(), "NOCOAH_PUBLIC_CLOUD")
}

func TestResolve_PartialPrimaryEnvIsSkippedEntirely(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	// Primary namespace lacks PUBLIC_CLOUD, so the whole set is skipped
	// even though the four core variables are valid.
	t.Setenv("NOCOAH_API_USER", "primary-user")
	t.Setenv("NOCOAH_API_PASS", "primary-pass")
	t.Setenv("NOCOAH_TENANT_ID", "primary-tenant")
	t.Setenv("NOCOAH_REGION", "tyo1")

	t.Setenv("CONOHA_API_USER", "secondary-user")
	t.Setenv("CONOHA_API_PASS", "secondary-pass")
	t.Setenv("CONOHA_TENANT_ID", "secondary-tenant")
	t.Setenv("CONOHA_REGION", "sin1")

	creds, err := config.Resolve(config.Options{})
	require.NoError(t, err)
	assert.Equal(t, "secondary-user", creds.User)
	assert.Equal(t, "sin1", creds.Region)
	assert.Equal(t, nocoah.ProviderConoHa, creds.Provider)
}

func TestResolve_DefaultConfigPaths(t *testing.T) {
	t.Run("primary path wins", func(t *testing.T) {
		clearEnv(t)
		home := t.TempDir()
		t.Setenv("HOME", home)

		require.NoError(t, os.MkdirAll(filepath.Join(home, ".nocoah"), 0750))
		writeConfigFile(t, filepath.Join(home, ".nocoah"),
			`{"api_user":"nocoah-user","api_pass":"p","tenant_id":"t1","region":"tyo1","public_cloud":"conoha"}`)

		require.NoError(t, os.MkdirAll(filepath.Join(home, ".conoha"), 0750))
		writeConfigFile(t, filepath.Join(home, ".conoha"),
			`{"api_user":"conoha-user","api_pass":"p","tenant_id":"t1","region":"tyo1"}`)

		creds, err := config.Resolve(config.Options{})
		require.NoError(t, err)
		assert.Equal(t, "nocoah-user", creds.User)
	})

	t.Run("secondary path defaults the provider", func(t *testing.T) {
		clearEnv(t)
		home := t.TempDir()
		t.Setenv("HOME", home)

		require.NoError(t, os.MkdirAll(filepath.Join(home, ".conoha"), 0750))
		writeConfigFile(t, filepath.Join(home, ".conoha"),
			`{"api_user":"conoha-user","api_pass":"p","tenant_id":"t1","region":"tyo1"}`)

		creds, err := config.Resolve(config.Options{})
		require.NoError(t, err)
		assert.Equal(t, "conoha-user", creds.User)
		assert.Equal(t, nocoah.ProviderConoHa, creds.Provider)
	})
}

func TestResolve_Exhaustion(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	_, err := config.Resolve(config.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, nocoah.ErrNoCredentialSource)
	assert.Contains(t, err.Error(), "config.Resolve")
}
