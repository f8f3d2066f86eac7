package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for longer operations such as package deploys.
	ExtendedHTTPTimeout = 120 * time.Second

	// ShortHTTPTimeout is used for quick operations such as ping.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// UCMDB server defaults.
const (
	// DefaultPort is the traditional UCMDB server port. Containerized
	// deployments commonly listen on 443, some appliances on 9443.
	DefaultPort = 8443

	// RestAPIBasePath is the path prefix for every UCMDB REST endpoint.
	RestAPIBasePath = "/rest-api"

	// DefaultClientContext is the client context identifier sent during
	// authentication.
	DefaultClientContext = 1

	// TokenLifetime is how long an acquired bearer token is reused before
	// the client re-authenticates. The server does not report an expiry,
	// so the client assumes a conservative lifetime.
	TokenLifetime = 15 * time.Minute
)

// Chunking defaults. The server splits large topology and compliance
// results into bounded-size pages.
const (
	// DefaultChunkSize is the default maximum number of nodes per
	// topology chunk.
	DefaultChunkSize = 10000

	// ComplianceChunkSize is the fixed page size the compliance endpoints
	// are called with.
	ComplianceChunkSize = 300

	// ChangeReportPageSize is the fixed page size the change report
	// endpoint is called with.
	ChangeReportPageSize = 100
)

// Cache defaults.
const (
	// DefaultCacheSize is the maximum number of entries held by the
	// in-memory cache.
	DefaultCacheSize = 1000

	// VersionCacheBucket is the NATS KV bucket used when server version
	// strings are shared across processes.
	VersionCacheBucket = "ucmdb-versions"
)

// Display limits.
const (
	// MaxTableCellWidth truncates long values in CLI table output.
	MaxTableCellWidth = 60
)
