package ucmdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ResponseError represents an error response from the UCMDB REST API.
type ResponseError struct {
	StatusCode int    `json:"status,omitempty"`
	Message    string `json:"error,omitempty"`
	Details    string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// VersionError reports that a gated operation was refused because the server
// is older than the operation requires.
type VersionError struct {
	Operation string
	Required  string
	Actual    string
	ServerID  string
}

// Error implements the error interface.
func (e *VersionError) Error() string {
	return fmt.Sprintf("operation %q requires UCMDB version %s or later; server %s is running version %s",
		e.Operation, e.Required, e.ServerID, e.Actual)
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrEndpointRequired      = errors.New("endpoint is required")
	ErrCredentialsRequired   = errors.New("username and password or an access token are required")
	ErrMalformedVersion      = errors.New("malformed version string")
	ErrVersionResolution     = errors.New("could not determine server version")
	ErrAuthenticationFailed  = errors.New("authentication failed")
	ErrStaticTokenNoRefresh  = errors.New("static token cannot be refreshed")
	ErrSkipTLSOnlyInDev      = errors.New("skipping TLS verification is only allowed in development environments")
	ErrZoneNotFound          = errors.New("management zone not found")
	ErrCacheKeyNotFound      = errors.New("key not found in cache")
	ErrCacheEntryExpired     = errors.New("cache entry expired")
	ErrCacheDisabled         = errors.New("cache disabled")
	ErrNATSConfigRequired    = errors.New("NATS configuration required for NATS cache")
	ErrChainConfigRequired   = errors.New("at least one layer configuration required for chain cache")
	ErrUnsupportedCacheType  = errors.New("unsupported cache type")
	ErrKeyNotFoundInAnyCache = errors.New("key not found in any cache")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode == http.StatusForbidden
	}

	return false
}

// IsVersionError checks if the error is a version incompatibility error.
func IsVersionError(err error) bool {
	verErr := &VersionError{}

	return errors.As(err, &verErr)
}

// ParseResponseError parses an error response body. Bodies that are not JSON
// are carried verbatim in the message so diagnostics are never lost.
func ParseResponseError(statusCode int, data []byte) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode}

	if len(data) > 0 {
		if err := json.Unmarshal(data, respErr); err != nil {
			respErr.Message = string(data)
		}

		respErr.StatusCode = statusCode
	}

	return respErr
}
