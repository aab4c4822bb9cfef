// Package client wires the resolved credentials, the identity session,
// and one dispatcher per sibling service into the public Client.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/Nia-TN1012/nocoah-sub000/internal/auth"
	"github.com/Nia-TN1012/nocoah-sub000/internal/config"
	"github.com/Nia-TN1012/nocoah-sub000/internal/constants"
	"github.com/Nia-TN1012/nocoah-sub000/internal/endpoints"
	nchttp "github.com/Nia-TN1012/nocoah-sub000/internal/http"
	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// Client implements the nocoah.Client interface.
type Client struct {
	identity   *auth.Identity
	httpClient nocoah.HTTPDoer

	compute       nocoah.ComputeClient
	network       nocoah.NetworkClient
	blockStorage  nocoah.BlockStorageClient
	image         nocoah.ImageClient
	objectStorage nocoah.ObjectStorageClient
	database      nocoah.DatabaseClient
	dns           nocoah.DNSClient
	mail          nocoah.MailClient
}

// New resolves credentials from the config, authenticates against the
// identity service, and returns a ready client. A failure at any step
// aborts construction; the client never exists half-initialized.
func New(ctx context.Context, cfg *nocoah.Config) (*Client, error) {
	if cfg == nil {
		return nil, nocoah.ErrConfigRequired
	}

	credentials, err := config.Resolve(config.Options{
		Credentials: cfg.Credentials,
		ConfigPath:  cfg.ConfigPath,
		Account:     cfg.Account,
	})
	if err != nil {
		return nil, err
	}

	httpClient := sharedTransport(cfg)

	identityURL, err := endpoints.BaseURL(credentials.Provider, endpoints.Identity, credentials.Region)
	if err != nil {
		return nil, err
	}

	identity := auth.NewIdentity(credentials, identityURL, httpClient)

	err = identity.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	return assemble(cfg, identity, httpClient)
}

// NewWithIdentity builds a client around a pre-built, already usable
// session, bypassing credential resolution entirely.
func NewWithIdentity(cfg *nocoah.Config, identity *auth.Identity) (*Client, error) {
	if cfg == nil {
		return nil, nocoah.ErrConfigRequired
	}

	return assemble(cfg, identity, sharedTransport(cfg))
}

// NewWithToken builds a client around an already issued token: no
// credential resolution, no identity exchange. Authenticate on the
// returned client renews the token with the given credentials.
func NewWithToken(cfg *nocoah.Config, credentials *nocoah.Credentials, token string, expiresAt time.Time) (*Client, error) {
	if cfg == nil {
		return nil, nocoah.ErrConfigRequired
	}

	if credentials == nil || !credentials.Complete() {
		return nil, nocoah.ErrCredentialsEmpty
	}

	resolved := *credentials
	if resolved.Provider == "" {
		resolved.Provider = nocoah.ProviderConoHa
	}

	httpClient := sharedTransport(cfg)

	identityURL, err := endpoints.BaseURL(resolved.Provider, endpoints.Identity, resolved.Region)
	if err != nil {
		return nil, err
	}

	identity := auth.NewIdentity(&resolved, identityURL, httpClient)
	identity.SetToken(token, expiresAt)

	return assemble(cfg, identity, httpClient)
}

// sharedTransport returns the injected transport or builds the single
// default client shared by every dispatcher of this account.
func sharedTransport(cfg *nocoah.Config) nocoah.HTTPDoer {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}

	timeout := cfg.HTTPTimeout
	if timeout == 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	return &http.Client{Timeout: timeout}
}

// dispatcherOptions builds the option set every service dispatcher
// shares: the common transport plus logging and opt-in retries.
func dispatcherOptions(cfg *nocoah.Config, httpClient nocoah.HTTPDoer) []nchttp.Option {
	opts := []nchttp.Option{nchttp.WithHTTPClient(httpClient)}

	if cfg.Logger != nil {
		opts = append(opts, nchttp.WithLogger(cfg.Logger))
	}

	if cfg.Debug {
		opts = append(opts, nchttp.WithDebug(true))
	}

	if cfg.UserAgent != "" {
		opts = append(opts, nchttp.WithUserAgent(cfg.UserAgent))
	}

	if cfg.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if cfg.RetryWaitMin > 0 {
			retryWaitMin = cfg.RetryWaitMin
		}

		if cfg.RetryWaitMax > 0 {
			retryWaitMax = cfg.RetryWaitMax
		}

		opts = append(opts, nchttp.WithRetryConfig(cfg.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// assemble resolves each sibling service's base URL and builds its
// dispatcher and resource client.
func assemble(cfg *nocoah.Config, identity *auth.Identity, httpClient nocoah.HTTPDoer) (*Client, error) {
	credentials := identity.Credentials()
	opts := dispatcherOptions(cfg, httpClient)

	dispatcher := func(service endpoints.Service) (*nchttp.Client, error) {
		baseURL, err := endpoints.BaseURL(credentials.Provider, service, credentials.Region)
		if err != nil {
			return nil, err
		}

		return nchttp.NewClient(baseURL, identity, opts...), nil
	}

	client := &Client{identity: identity, httpClient: httpClient}

	computeHTTP, err := dispatcher(endpoints.Compute)
	if err != nil {
		return nil, err
	}

	networkHTTP, err := dispatcher(endpoints.Network)
	if err != nil {
		return nil, err
	}

	volumeHTTP, err := dispatcher(endpoints.BlockStorage)
	if err != nil {
		return nil, err
	}

	imageHTTP, err := dispatcher(endpoints.Image)
	if err != nil {
		return nil, err
	}

	storageHTTP, err := dispatcher(endpoints.ObjectStorage)
	if err != nil {
		return nil, err
	}

	databaseHTTP, err := dispatcher(endpoints.Database)
	if err != nil {
		return nil, err
	}

	dnsHTTP, err := dispatcher(endpoints.DNS)
	if err != nil {
		return nil, err
	}

	mailHTTP, err := dispatcher(endpoints.Mail)
	if err != nil {
		return nil, err
	}

	client.compute = NewComputeClient(computeHTTP, credentials.TenantID)
	client.network = NewNetworkClient(networkHTTP)
	client.blockStorage = NewBlockStorageClient(volumeHTTP, credentials.TenantID)
	client.image = NewImageClient(imageHTTP)
	client.objectStorage = NewObjectStorageClient(storageHTTP, credentials.TenantID)
	client.database = NewDatabaseClient(databaseHTTP)
	client.dns = NewDNSClient(dnsHTTP)
	client.mail = NewMailClient(mailHTTP)

	return client, nil
}

// Authenticate implements nocoah.Client.Authenticate.
func (c *Client) Authenticate(ctx context.Context) error {
	return c.identity.Authenticate(ctx)
}

// Token implements nocoah.Client.Token.
func (c *Client) Token(ctx context.Context) (string, error) {
	return c.identity.GetToken(ctx)
}

// TokenAvailable implements nocoah.Client.TokenAvailable.
func (c *Client) TokenAvailable() bool {
	return c.identity.Available()
}

// TokenExpiresAt returns the cached token's expiry.
func (c *Client) TokenExpiresAt() time.Time {
	return c.identity.ExpiresAt()
}

// Compute implements nocoah.Client.Compute.
func (c *Client) Compute() nocoah.ComputeClient {
	return c.compute
}

// Network implements nocoah.Client.Network.
func (c *Client) Network() nocoah.NetworkClient {
	return c.network
}

// BlockStorage implements nocoah.Client.BlockStorage.
func (c *Client) BlockStorage() nocoah.BlockStorageClient {
	return c.blockStorage
}

// Image implements nocoah.Client.Image.
func (c *Client) Image() nocoah.ImageClient {
	return c.image
}

// ObjectStorage implements nocoah.Client.ObjectStorage.
func (c *Client) ObjectStorage() nocoah.ObjectStorageClient {
	return c.objectStorage
}

// Database implements nocoah.Client.Database.
func (c *Client) Database() nocoah.DatabaseClient {
	return c.database
}

// DNS implements nocoah.Client.DNS.
func (c *Client) DNS() nocoah.DNSClient {
	return c.dns
}

// Mail implements nocoah.Client.Mail.
func (c *Client) Mail() nocoah.MailClient {
	return c.mail
}
