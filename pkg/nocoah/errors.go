package nocoah

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a failed API call. StatusCode carries the HTTP
// status returned by the service; a StatusCode of zero means no response
// was received at all (DNS, connect, or timeout failure), in which case
// the transport cause is available via Unwrap.
type APIError struct {
	Message    string `json:"message"               yaml:"message"`
	StatusCode int    `json:"status_code,omitempty" yaml:"status_code,omitempty"`

	cause error
}

// NewAPIError creates an APIError for a response with the given status.
func NewAPIError(message string, statusCode int) *APIError {
	return &APIError{Message: message, StatusCode: statusCode}
}

// NewTransportError wraps a failure that produced no HTTP response.
func NewTransportError(message string, cause error) *APIError {
	return &APIError{Message: message, cause: cause}
}

// WrapAPIError creates an APIError that both carries a status and wraps
// a cause, such as a streaming chunk handler failure mid-download.
func WrapAPIError(message string, statusCode int, cause error) *APIError {
	return &APIError{Message: message, StatusCode: statusCode, cause: cause}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		if e.cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.cause)
		}

		return e.Message
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// Unwrap returns the transport cause, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// Configuration errors. These surface at construction time, before any
// network call, and are never retried.
var (
	ErrNoCredentialSource = errors.New("no credential source satisfied: supply credentials, a config file, an account map, or NOCOAH_/CONOHA_ environment variables")
	ErrMalformedConfig    = errors.New("malformed config file")
	ErrUnreadableConfig   = errors.New("config file is not readable")
	ErrMissingConfigField = errors.New("missing required config field")
	ErrConfigRequired     = errors.New("config is required")
	ErrNotAuthenticated   = errors.New("not authenticated: call Authenticate first")
)

// Validation errors. Caller-side precondition violations detected before
// any request is sent.
var (
	ErrInvalidProvider  = errors.New("unknown cloud provider")
	ErrInvalidRegion    = errors.New("region must not be empty")
	ErrNoEndpoint       = errors.New("no endpoint for service")
	ErrNameRequired     = errors.New("name is required")
	ErrIDRequired       = errors.New("id is required")
	ErrBodyRequired     = errors.New("request body is required")
	ErrNilChunkHandler  = errors.New("chunk handler must not be nil")
	ErrCredentialsEmpty = errors.New("credentials must carry user, password, tenant id, and region")
)

// IsConfigurationError reports whether err belongs to the configuration
// error family.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrNoCredentialSource) ||
		errors.Is(err, ErrMalformedConfig) ||
		errors.Is(err, ErrUnreadableConfig) ||
		errors.Is(err, ErrMissingConfigField) ||
		errors.Is(err, ErrConfigRequired)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized reports whether err is an APIError with a 401 status.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsTransport reports whether err is an APIError that never received an
// HTTP response.
func IsTransport(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 0
	}

	return false
}
