// Package config resolves account credentials from the supported
// sources: explicit values, config files, in-memory account maps, and
// the NOCOAH_/CONOHA_ environment variable namespaces.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// Config file and environment variable keys.
const (
	KeyAPIUser     = "api_user"
	KeyAPIPass     = "api_pass"
	KeyTenantID    = "tenant_id"
	KeyRegion      = "region"
	KeyPublicCloud = "public_cloud"
)

// Environment variable namespaces. The primary namespace additionally
// requires the public cloud variable; the secondary defaults it.
const (
	PrimaryEnvPrefix   = "NOCOAH_"
	SecondaryEnvPrefix = "CONOHA_"
)

// Default config file locations, relative to the home directory.
const (
	primaryConfigDir   = ".nocoah"
	secondaryConfigDir = ".conoha"
	configFileName     = "config"
)

// Options are the explicit inputs to Resolve. All fields are optional;
// the environment and default file paths are consulted when none apply.
type Options struct {
	// Credentials bypasses resolution entirely when set.
	Credentials *nocoah.Credentials
	// ConfigPath is an explicit JSON config file path.
	ConfigPath string
	// Account is an in-memory map with the same keys as the config file.
	Account map[string]string
}

// Resolve merges the candidate credential sources with strict precedence
// and returns the first satisfied one. Lower-precedence sources are
// never consulted once a higher one succeeds, and a satisfied-but-broken
// source (malformed file, missing key) is fatal rather than a fallback.
func Resolve(opts Options) (*nocoah.Credentials, error) {
	if opts.Credentials != nil {
		return fromExplicit(opts.Credentials)
	}

	if opts.ConfigPath != "" {
		return fromConfigFile(opts.ConfigPath)
	}

	if opts.Account != nil {
		return fromAccountMap(opts.Account)
	}

	creds, ok, err := fromEnv(PrimaryEnvPrefix, true)
	if err != nil {
		return nil, err
	}

	if ok {
		return creds, nil
	}

	creds, ok, err = fromEnv(SecondaryEnvPrefix, false)
	if err != nil {
		return nil, err
	}

	if ok {
		return creds, nil
	}

	for _, dir := range []string{primaryConfigDir, secondaryConfigDir} {
		path, ok := defaultConfigPath(dir)
		if !ok {
			continue
		}

		return fromConfigFile(path)
	}

	return nil, ErrResolverExhausted()
}

// ErrResolverExhausted names the resolver in the exhaustion error so a
// failed startup points here.
func ErrResolverExhausted() error {
	return fmt.Errorf("config.Resolve: %w", nocoah.ErrNoCredentialSource)
}

func fromExplicit(creds *nocoah.Credentials) (*nocoah.Credentials, error) {
	if !creds.Complete() {
		return nil, fmt.Errorf("config.Resolve: %w", nocoah.ErrCredentialsEmpty)
	}

	resolved := *creds
	if resolved.Provider == "" {
		resolved.Provider = nocoah.ProviderConoHa
	}

	if !resolved.Provider.Valid() {
		return nil, fmt.Errorf("%w: %q", nocoah.ErrInvalidProvider, resolved.Provider)
	}

	return &resolved, nil
}

func fromConfigFile(path string) (*nocoah.Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", nocoah.ErrUnreadableConfig, path, err)
	}

	v := viper.New()
	v.SetConfigType("json")

	err = v.ReadConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", nocoah.ErrMalformedConfig, path, err)
	}

	values := map[string]string{}
	for _, key := range []string{KeyAPIUser, KeyAPIPass, KeyTenantID, KeyRegion} {
		value := v.GetString(key)
		if value == "" {
			return nil, fmt.Errorf("%w: %q in %s", nocoah.ErrMissingConfigField, key, path)
		}

		values[key] = value
	}

	provider := nocoah.ProviderConoHa
	if cloud := v.GetString(KeyPublicCloud); cloud != "" {
		provider = nocoah.CloudProvider(cloud)
		if !provider.Valid() {
			return nil, fmt.Errorf("%w: %q in %s", nocoah.ErrInvalidProvider, cloud, path)
		}
	}

	return &nocoah.Credentials{
		User:     values[KeyAPIUser],
		Password: values[KeyAPIPass],
		TenantID: values[KeyTenantID],
		Region:   values[KeyRegion],
		Provider: provider,
	}, nil
}

func fromAccountMap(account map[string]string) (*nocoah.Credentials, error) {
	for _, key := range []string{KeyAPIUser, KeyAPIPass, KeyTenantID, KeyRegion} {
		if account[key] == "" {
			return nil, fmt.Errorf("%w: %q in account map", nocoah.ErrMissingConfigField, key)
		}
	}

	provider := nocoah.ProviderConoHa
	if cloud := account[KeyPublicCloud]; cloud != "" {
		provider = nocoah.CloudProvider(cloud)
		if !provider.Valid() {
			return nil, fmt.Errorf("%w: %q in account map", nocoah.ErrInvalidProvider, cloud)
		}
	}

	return &nocoah.Credentials{
		User:     account[KeyAPIUser],
		Password: account[KeyAPIPass],
		TenantID: account[KeyTenantID],
		Region:   account[KeyRegion],
		Provider: provider,
	}, nil
}

// fromEnv reads one namespace. The set is satisfied only when every
// required variable is present; a partial set skips the namespace
// entirely rather than mixing it with lower-precedence sources. A
// complete set with an unknown public cloud is fatal, the same as a
// config file naming one.
func fromEnv(prefix string, publicCloudRequired bool) (*nocoah.Credentials, bool, error) {
	required := []string{"API_USER", "API_PASS", "TENANT_ID", "REGION"}
	if publicCloudRequired {
		required = append(required, "PUBLIC_CLOUD")
	}

	values := map[string]string{}

	for _, suffix := range required {
		value, ok := os.LookupEnv(prefix + suffix)
		if !ok || value == "" {
			return nil, false, nil
		}

		values[suffix] = value
	}

	provider := nocoah.ProviderConoHa
	if cloud := values["PUBLIC_CLOUD"]; cloud != "" {
		provider = nocoah.CloudProvider(cloud)
		if !provider.Valid() {
			return nil, false, fmt.Errorf("%w: %q in %sPUBLIC_CLOUD", nocoah.ErrInvalidProvider, cloud, prefix)
		}
	}

	return &nocoah.Credentials{
		User:     values["API_USER"],
		Password: values["API_PASS"],
		TenantID: values["TENANT_ID"],
		Region:   values["REGION"],
		Provider: provider,
	}, true, nil
}

// defaultConfigPath returns the conventional config file under the home
// directory, and whether it exists.
func defaultConfigPath(dir string) (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	path := filepath.Join(home, dir, configFileName)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}

	return path, true
}
