// Package client implements the ucmdb.Client interface over the shared HTTP
// transport.
package client

import (
	"context"
	"crypto/tls"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/kwpaschal/ucmdb-rest/internal/auth"
	"github.com/kwpaschal/ucmdb-rest/internal/constants"
	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// Client implements the ucmdb.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	serverID     string
	logger       ucmdb.Logger
	versionGate  *ucmdb.VersionGate
	versionCache ucmdb.Cache

	// Resource clients
	topology        ucmdb.TopologyClient
	dataModel       ucmdb.DataModelClient
	policies        ucmdb.PoliciesClient
	discovery       ucmdb.DiscoveryClient
	managementZones ucmdb.ManagementZonesClient
	dataFlow        ucmdb.DataFlowClient
	integration     ucmdb.IntegrationClient
	packages        ucmdb.PackagesClient
	settings        ucmdb.SettingsClient
	reports         ucmdb.ReportsClient
	reconciliation  ucmdb.ReconciliationClient
	system          ucmdb.SystemClient
}

// createTokenManager creates the appropriate token manager based on config.
func createTokenManager(config *ucmdb.Config) auth.TokenManager {
	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	if config.Username != "" && config.Password != "" {
		clientContext := config.ClientContext
		if clientContext == 0 {
			clientContext = constants.DefaultClientContext
		}

		var authOpts []auth.PasswordOption
		if config.SkipTLSVerify {
			authOpts = append(authOpts, auth.WithHTTPClient(&nethttp.Client{
				Timeout: constants.DefaultHTTPTimeout,
				Transport: &nethttp.Transport{
					TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 -- dev-mode only, guarded by the facade
				},
			}))
		}

		return auth.NewPasswordTokenManager(config.Endpoint, config.Username, config.Password, clientContext, authOpts...)
	}

	return nil // Unauthenticated, only the ping endpoint works
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *ucmdb.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.SkipTLSVerify {
		httpOpts = append(httpOpts, http.WithInsecureTLS())
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new UCMDB API client. The endpoint in config must already be
// normalized to the REST API base URL; pkg/ucmdbclient does that for callers.
func New(ctx context.Context, config *ucmdb.Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, ucmdb.ErrEndpointRequired
	}

	tokenManager := createTokenManager(config)
	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.Endpoint, tokenManager, httpOpts...)

	logger := config.Logger
	if logger == nil {
		logger = ucmdb.NopLogger{}
	}

	versionCache, err := ucmdb.NewCacheFromConfig(config.VersionCache)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.Endpoint,
		serverID:     serverIDFromEndpoint(config.Endpoint),
		logger:       logger,
		versionGate:  ucmdb.NewVersionGate(versionCache, logger),
		versionCache: versionCache,
	}

	client.initializeResourceClients()

	if config.ResolveVersionOnInit {
		_, _ = client.versionGate.Resolve(ctx, client.serverID, client.fetchVersion) // Ignore error as it's optional
	}

	return client, nil
}

// serverIDFromEndpoint derives the cache identity of a server from its
// endpoint URL. Two clients pointed at the same host share version cache
// entries when constructed over the same backend.
func serverIDFromEndpoint(endpoint string) string {
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Host == "" {
		return endpoint
	}

	return parsed.Host
}

// initializeResourceClients wires up all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.system = NewSystemClient(c.httpClient, c.versionGate, c.serverID)
	c.topology = NewTopologyClient(c.httpClient, c.logger)
	c.dataModel = NewDataModelClient(c.httpClient)
	c.policies = NewPoliciesClient(c.httpClient, c.logger)
	c.discovery = NewDiscoveryClient(c.httpClient, c.versionGate, c.serverID, c.fetchVersion)
	c.managementZones = NewManagementZonesClient(c.httpClient)
	c.dataFlow = NewDataFlowClient(c.httpClient, c.versionGate, c.serverID, c.fetchVersion)
	c.integration = NewIntegrationClient(c.httpClient)
	c.packages = NewPackagesClient(c.httpClient, c.versionGate, c.serverID, c.fetchVersion)
	c.settings = NewSettingsClient(c.httpClient)
	c.reports = NewReportsClient(c.httpClient)
	c.reconciliation = NewReconciliationClient(c.httpClient)
}

// fetchVersion is the version gate's fetch function: it resolves the server
// version through the system client.
func (c *Client) fetchVersion(ctx context.Context) (*ucmdb.VersionInfo, error) {
	return c.system.GetVersion(ctx)
}

// Topology implements ucmdb.Client.Topology.
func (c *Client) Topology() ucmdb.TopologyClient { return c.topology }

// DataModel implements ucmdb.Client.DataModel.
func (c *Client) DataModel() ucmdb.DataModelClient { return c.dataModel }

// Policies implements ucmdb.Client.Policies.
func (c *Client) Policies() ucmdb.PoliciesClient { return c.policies }

// Discovery implements ucmdb.Client.Discovery.
func (c *Client) Discovery() ucmdb.DiscoveryClient { return c.discovery }

// ManagementZones implements ucmdb.Client.ManagementZones.
func (c *Client) ManagementZones() ucmdb.ManagementZonesClient { return c.managementZones }

// DataFlow implements ucmdb.Client.DataFlow.
func (c *Client) DataFlow() ucmdb.DataFlowClient { return c.dataFlow }

// Integration implements ucmdb.Client.Integration.
func (c *Client) Integration() ucmdb.IntegrationClient { return c.integration }

// Packages implements ucmdb.Client.Packages.
func (c *Client) Packages() ucmdb.PackagesClient { return c.packages }

// Settings implements ucmdb.Client.Settings.
func (c *Client) Settings() ucmdb.SettingsClient { return c.settings }

// Reports implements ucmdb.Client.Reports.
func (c *Client) Reports() ucmdb.ReportsClient { return c.reports }

// Reconciliation implements ucmdb.Client.Reconciliation.
func (c *Client) Reconciliation() ucmdb.ReconciliationClient { return c.reconciliation }

// System implements ucmdb.Client.System.
func (c *Client) System() ucmdb.SystemClient { return c.system }

// VersionGate implements ucmdb.Client.VersionGate.
func (c *Client) VersionGate() *ucmdb.VersionGate { return c.versionGate }

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// SetToken installs a pre-issued token, for example one restored from a CLI
// config file.
func (c *Client) SetToken(token string, expiresAt time.Time) {
	if c.tokenManager != nil {
		c.tokenManager.SetToken(token, expiresAt)
	}
}

// Close releases resources held by the version cache backend. The in-memory
// backend has nothing to release; the NATS backend drains its connection.
func (c *Client) Close() error {
	if closer, ok := c.versionCache.(interface{ Close() error }); ok {
		return closer.Close()
	}

	return nil
}
