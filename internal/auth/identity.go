package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Nia-TN1012/nocoah-sub000/pkg/nocoah"
)

// Static errors for err113 compliance.
var (
	ErrNoTokenInResponse  = errors.New("identity response carries no token id")
	ErrNoExpiryInResponse = errors.New("identity response carries no token expiry")
)

// TokenProvider is what the request dispatcher needs from the session:
// the cached bearer token, never a fresh network exchange.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// Identity owns the resolved credentials and the token lifecycle for
// one session. Authenticate is the only operation that mutates state;
// it may be called again explicitly once the token expires — renewal is
// never automatic.
type Identity struct {
	credentials nocoah.Credentials
	baseURL     string
	httpClient  nocoah.HTTPDoer
	store       *TokenStore

	// authMu serializes concurrent Authenticate calls so one expiry
	// event triggers at most one identity exchange.
	authMu sync.Mutex
}

// NewIdentity creates an unauthenticated session for the given identity
// service base URL. The caller authenticates before first use.
func NewIdentity(credentials *nocoah.Credentials, baseURL string, httpClient nocoah.HTTPDoer) *Identity {
	return &Identity{
		credentials: *credentials,
		baseURL:     baseURL,
		httpClient:  httpClient,
		store:       NewTokenStore(),
	}
}

// authRequest is the identity service wire body.
type authRequest struct {
	Auth struct {
		PasswordCredentials struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"passwordCredentials"`
		TenantID string `json:"tenantId"`
	} `json:"auth"`
}

// authResponse is the subset of the identity response the session needs.
type authResponse struct {
	Access struct {
		Token struct {
			ID      string `json:"id"`
			Expires string `json:"expires"`
		} `json:"token"`
	} `json:"access"`
}

// Authenticate performs the unauthenticated token exchange and stores
// the resulting token and expiry together. A status >= 400 surfaces as
// an APIError carrying that status; nothing is retried.
func (i *Identity) Authenticate(ctx context.Context) error {
	i.authMu.Lock()
	defer i.authMu.Unlock()

	var body authRequest
	body.Auth.PasswordCredentials.Username = i.credentials.User
	body.Auth.PasswordCredentials.Password = i.credentials.Password
	body.Auth.TenantID = i.credentials.TenantID

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.baseURL+"/tokens", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating auth request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nocoah.NewTransportError("authenticating", err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return nocoah.NewAPIError("authentication failed", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nocoah.NewTransportError("reading auth response", err)
	}

	var parsed authResponse

	err = json.Unmarshal(data, &parsed)
	if err != nil {
		return fmt.Errorf("parsing auth response: %w", err)
	}

	if parsed.Access.Token.ID == "" {
		return ErrNoTokenInResponse
	}

	if parsed.Access.Token.Expires == "" {
		return ErrNoExpiryInResponse
	}

	expiresAt, err := time.Parse(time.RFC3339, parsed.Access.Token.Expires)
	if err != nil {
		return fmt.Errorf("parsing token expiry: %w", err)
	}

	i.store.Set(&Token{ID: parsed.Access.Token.ID, ExpiresAt: expiresAt})

	return nil
}

// GetToken returns the cached token string. It never refreshes; an
// expired token is still returned so the API's own 401 surfaces to the
// caller, matching the manual-renewal contract.
func (i *Identity) GetToken(ctx context.Context) (string, error) {
	token := i.store.Get()
	if token == nil || token.ID == "" {
		return "", nocoah.ErrNotAuthenticated
	}

	return token.ID, nil
}

// Available reports whether the cached token is still within its expiry.
func (i *Identity) Available() bool {
	return i.store.Get().Valid()
}

// ExpiresAt returns the current token's expiry, or the zero time when
// no token is cached.
func (i *Identity) ExpiresAt() time.Time {
	token := i.store.Get()
	if token == nil {
		return time.Time{}
	}

	return token.ExpiresAt
}

// SetToken manually installs a token and expiry pair.
func (i *Identity) SetToken(id string, expiresAt time.Time) {
	i.store.Set(&Token{ID: id, ExpiresAt: expiresAt})
}

// Credentials returns a copy of the resolved credentials.
func (i *Identity) Credentials() nocoah.Credentials {
	return i.credentials
}
