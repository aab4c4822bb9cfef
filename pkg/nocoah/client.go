package nocoah

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Client provides access to every ConoHa service client plus the
// identity session that backs them.
type Client interface {
	// Authenticate exchanges the resolved credentials for a fresh token.
	// The client authenticates once during construction; call this again
	// to renew an expired token. Renewal is never automatic.
	Authenticate(ctx context.Context) error
	// Token returns the cached bearer token.
	Token(ctx context.Context) (string, error)
	// TokenAvailable reports whether the cached token is still valid.
	TokenAvailable() bool

	Compute() ComputeClient
	Network() NetworkClient
	BlockStorage() BlockStorageClient
	Image() ImageClient
	ObjectStorage() ObjectStorageClient
	Database() DatabaseClient
	DNS() DNSClient
	Mail() MailClient
}

// ComputeClient covers the compute (VPS) service.
type ComputeClient interface {
	ListServers(ctx context.Context) ([]Server, error)
	GetServer(ctx context.Context, serverID string) (*Server, error)
	CreateServer(ctx context.Context, req *ServerCreateRequest) (*Server, error)
	DeleteServer(ctx context.Context, serverID string) error
	StartServer(ctx context.Context, serverID string) error
	StopServer(ctx context.Context, serverID string) error
	RebootServer(ctx context.Context, serverID string) error
}

// NetworkClient covers the networking service.
type NetworkClient interface {
	ListNetworks(ctx context.Context) ([]Network, error)
	ListSecurityGroups(ctx context.Context) ([]SecurityGroup, error)
	GetSecurityGroup(ctx context.Context, groupID string) (*SecurityGroup, error)
}

// BlockStorageClient covers the block storage (volume) service.
type BlockStorageClient interface {
	ListVolumes(ctx context.Context) ([]Volume, error)
	GetVolume(ctx context.Context, volumeID string) (*Volume, error)
	CreateVolume(ctx context.Context, req *VolumeCreateRequest) (*Volume, error)
	DeleteVolume(ctx context.Context, volumeID string) error
}

// ImageClient covers the image service.
type ImageClient interface {
	ListImages(ctx context.Context) ([]Image, error)
	GetImage(ctx context.Context, imageID string) (*Image, error)
}

// ObjectStorageClient covers the object storage service.
type ObjectStorageClient interface {
	GetAccountMetadata(ctx context.Context) (map[string]string, error)
	ListContainers(ctx context.Context) ([]Container, error)
	ListObjects(ctx context.Context, container string) ([]Object, error)
	UploadObject(ctx context.Context, container, object, contentType string, body io.Reader) error
	DownloadObject(ctx context.Context, container, object string, handler func(chunk []byte) error) error
	DeleteObject(ctx context.Context, container, object string) error
}

// DatabaseClient covers the database hosting service.
type DatabaseClient interface {
	ListDatabases(ctx context.Context) ([]Database, error)
	GetDatabase(ctx context.Context, databaseID string) (*Database, error)
	CreateDatabase(ctx context.Context, req *DatabaseCreateRequest) (*Database, error)
	DeleteDatabase(ctx context.Context, databaseID string) error
	ListDatabaseUsers(ctx context.Context) ([]DatabaseUser, error)
	CreateDatabaseUser(ctx context.Context, req *DatabaseUserCreateRequest) (*DatabaseUser, error)
	DeleteDatabaseUser(ctx context.Context, userID string) error
}

// DNSClient covers the DNS service.
type DNSClient interface {
	ListDomains(ctx context.Context) ([]Domain, error)
	GetDomain(ctx context.Context, domainID string) (*Domain, error)
	CreateDomain(ctx context.Context, req *DomainCreateRequest) (*Domain, error)
	DeleteDomain(ctx context.Context, domainID string) error
	ListRecords(ctx context.Context, domainID string) ([]Record, error)
	CreateRecord(ctx context.Context, domainID string, req *RecordCreateRequest) (*Record, error)
	DeleteRecord(ctx context.Context, domainID, recordID string) error
}

// MailClient covers the mail hosting service.
type MailClient interface {
	ListMailDomains(ctx context.Context) ([]MailDomain, error)
	GetMailDomain(ctx context.Context, domainID string) (*MailDomain, error)
	CreateMailDomain(ctx context.Context, req *MailDomainCreateRequest) (*MailDomain, error)
	DeleteMailDomain(ctx context.Context, domainID string) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config carries everything needed to build a Client.
//
// # Credential precedence
//
// The concrete client resolves credentials from the first satisfied
// source, in order; lower sources are never consulted once one wins:
//  1. Credentials: an explicit pre-built value, used as-is.
//  2. ConfigPath: a JSON config file. Parse failures and missing
//     required keys are fatal, never a silent fallback.
//  3. Account: an in-memory map with the same keys as the config file.
//  4. NOCOAH_API_USER / _API_PASS / _TENANT_ID / _REGION /
//     _PUBLIC_CLOUD — all five must be present.
//  5. CONOHA_API_USER / _API_PASS / _TENANT_ID / _REGION — the provider
//     defaults to "conoha".
//  6. ~/.nocoah/config (JSON, as in 2).
//  7. ~/.conoha/config (provider defaults as in 5).
//
// If no source is satisfied, construction fails with
// ErrNoCredentialSource.
//
// # Timeouts and retries
//
// HTTPClient, when set, is shared by every service client; otherwise a
// single transport with an explicit 30s timeout is created once and
// shared. No call is ever retried automatically; RetryMax opts into a
// retrying transport for callers that want one.
type Config struct {
	// Credentials: explicit pre-built credentials (precedence step 1).
	Credentials *Credentials
	// ConfigPath: explicit JSON config file path (precedence step 2).
	ConfigPath string
	// Account: in-memory account map (precedence step 3). Keys match the
	// config file: api_user, api_pass, tenant_id, region, public_cloud.
	Account map[string]string

	// HTTPClient: optional shared transport injected into every service
	// client. Nil means one shared default client.
	HTTPClient HTTPDoer
	// HTTPTimeout: timeout applied when the default transport is built.
	HTTPTimeout time.Duration
	// RetryMax: maximum retries for transient failures. Zero (the
	// default) disables retrying entirely.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: enables request/response logging when Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}

// HTTPDoer is the minimal transport contract the dispatcher needs.
// *net/http.Client satisfies it, as does retryablehttp's standard
// client adapter.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
