// Package nocoahclient provides the main entry point for creating ConoHa API clients
package nocoahclient

import (
	"context"
	"fmt"
	"time"

	"github.com/Nia-TN1012/nocoah-sub000/internal/client"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// New creates a new ConoHa API client. Credentials are resolved from
// the config per the precedence documented on nocoah.Config, then a
// token is obtained from the identity service before New returns.
func New(ctx context.Context, config *nocoah.Config) (nocoah.Client, error) {
	if config == nil {
		return nil, nocoah.ErrConfigRequired
	}

	cli, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithCredentials creates a new client from explicit API credentials.
func NewWithCredentials(ctx context.Context, user, password, tenantID, region string) (nocoah.Client, error) {
	return New(ctx, &nocoah.Config{
		Credentials: &nocoah.Credentials{
			User:     user,
			Password: password,
			TenantID: tenantID,
			Region:   region,
			Provider: nocoah.ProviderConoHa,
		},
	})
}

// NewWithConfigFile creates a new client from a JSON config file.
func NewWithConfigFile(ctx context.Context, path string) (nocoah.Client, error) {
	return New(ctx, &nocoah.Config{
		ConfigPath: path,
	})
}

// NewFromEnv creates a new client from the environment, falling through
// to the default config files when no environment namespace is complete.
func NewFromEnv(ctx context.Context) (nocoah.Client, error) {
	return New(ctx, &nocoah.Config{})
}

// NewWithIdentity creates a client around a pre-built identity session:
// credentials plus a token already issued for them. Credential
// resolution and the initial identity exchange are both skipped; call
// Authenticate on the returned client to renew the token.
func NewWithIdentity(config *nocoah.Config, credentials *nocoah.Credentials, token string, expiresAt time.Time) (nocoah.Client, error) {
	if config == nil {
		return nil, nocoah.ErrConfigRequired
	}

	cli, err := client.NewWithToken(config, credentials, token, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}
