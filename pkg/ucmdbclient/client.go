// Package ucmdbclient provides the main entry point for creating UCMDB REST API clients.
package ucmdbclient

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/kwpaschal/ucmdb-rest/internal/client"
	"github.com/kwpaschal/ucmdb-rest/internal/constants"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// New creates a new UCMDB API client from config. The endpoint is normalized
// to a full REST API base URL before the client is built: a missing scheme
// defaults to https, a missing port defaults to 8443, and the /rest-api base
// path is appended when absent.
func New(ctx context.Context, config *ucmdb.Config) (ucmdb.Client, error) {
	if config == nil {
		return nil, ucmdb.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, ucmdb.ErrEndpointRequired
	}

	if config.SkipTLSVerify && !isDevelopmentEnvironment() {
		return nil, fmt.Errorf("%w (set UCMDB_DEV_MODE=true)", ucmdb.ErrSkipTLSOnlyInDev)
	}

	endpoint, err := NormalizeEndpoint(config.Endpoint)
	if err != nil {
		return nil, err
	}

	config.Endpoint = endpoint

	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NormalizeEndpoint expands a bare hostname or host:port into the full REST
// API base URL.
func NormalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint: %w", err)
	}

	if parsed.Port() == "" {
		parsed.Host += ":" + strconv.Itoa(constants.DefaultPort)
	}

	if !strings.HasSuffix(parsed.Path, constants.RestAPIBasePath) {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/") + constants.RestAPIBasePath
	}

	return parsed.String(), nil
}

// isDevelopmentEnvironment checks if we're in a development environment.
func isDevelopmentEnvironment() bool {
	devMode := os.Getenv("UCMDB_DEV_MODE")

	return devMode == "true" || devMode == "1"
}

// NewWithEndpoint creates a new client with just an endpoint (no auth). Only
// the ping endpoint is usable without credentials.
func NewWithEndpoint(ctx context.Context, endpoint string) (ucmdb.Client, error) {
	return New(ctx, &ucmdb.Config{
		Endpoint: endpoint,
	})
}

// NewWithToken creates a new client with an endpoint and a pre-issued bearer
// token.
func NewWithToken(ctx context.Context, endpoint, token string) (ucmdb.Client, error) {
	return New(ctx, &ucmdb.Config{
		Endpoint:    endpoint,
		AccessToken: token,
	})
}

// NewWithPassword creates a new client using username/password authentication.
func NewWithPassword(ctx context.Context, endpoint, username, password string) (ucmdb.Client, error) {
	return New(ctx, &ucmdb.Config{
		Endpoint: endpoint,
		Username: username,
		Password: password,
	})
}
