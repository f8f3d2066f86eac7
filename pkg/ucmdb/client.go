package ucmdb

import (
	"context"
	"time"
)

// TopologyClient reads topology data: views, ad-hoc queries, and the chunked
// result protocol behind both.
type TopologyClient interface {
	RunView(ctx context.Context, view string, opts *RunViewOptions) (*TopologyResult, error)
	QueryCIs(ctx context.Context, query *TopologyQuery) (*TopologyResult, error)
	GetChunk(ctx context.Context, resultID string, index int) (*TopologyResult, error)
	GetChunkForPath(ctx context.Context, req *ChunkForPathRequest) (*ViewResultChunk, error)
	GetAllViewResults(ctx context.Context, view string, chunkSize int) (*CIBulk, error)
}

// RunViewOptions tune a view run.
type RunViewOptions struct {
	IncludeEmptyLayoutProperties bool
	ChunkSize                    int
}

// DataModelClient performs CRUD on CIs and relations and inspects the class
// model.
type DataModelClient interface {
	AddCIs(ctx context.Context, bulk *CIBulk, opts *AddCIsOptions) (*AddCIsResult, error)
	GetCI(ctx context.Context, id string) (*CI, error)
	UpdateCI(ctx context.Context, id string, update *CI) (*CI, error)
	DeleteCI(ctx context.Context, id string, isGlobalID bool) error
	GetClass(ctx context.Context, ciType string) (*ClassDefinition, error)
	GetIdentificationRule(ctx context.Context, ciType string) (*ClassDefinition, error)
	ExposeCIs(ctx context.Context, query *ExposeQuery) ([]ExposedCI, error)
	FindCIsByLabel(ctx context.Context, labelPattern, operator string) ([]ExposedCI, error)
}

// PoliciesClient works with compliance policies and calculated compliance
// views.
type PoliciesClient interface {
	GetPolicies(ctx context.Context) ([]Policy, error)
	GetComplianceViews(ctx context.Context) ([]ComplianceView, error)
	GetComplianceView(ctx context.Context, name string) (*ComplianceView, error)
	CalculateView(ctx context.Context, view string) (*ViewExecution, error)
	CalculateCompliance(ctx context.Context, body interface{}) (*ViewExecution, error)
	GetNonCompliantChunk(ctx context.Context, executionID string, chunk int) (*ViewResultChunk, error)
	GetNumberOfElements(ctx context.Context, req *ElementCountRequest) (int, error)
	GetAllNonCompliant(ctx context.Context, view string) ([]CI, error)
}

// DiscoveryClient manages discovery job groups and profiles.
type DiscoveryClient interface {
	ListJobGroups(ctx context.Context, fields []string) (*DiscoveryJobGroupList, error)
	GetJobGroup(ctx context.Context, name string) (*DiscoveryJobGroup, error)
	CreateJobGroup(ctx context.Context, group *DiscoveryJobGroup) error
	DeleteJobGroup(ctx context.Context, name string) error
	CreateProfile(ctx context.Context, profile *DiscoveryProfile) error
	DeleteProfile(ctx context.Context, name string) error
}

// ManagementZonesClient manages CMS UI management zones and their discovery
// statistics.
type ManagementZonesClient interface {
	ListZones(ctx context.Context) ([]ManagementZone, error)
	GetZone(ctx context.Context, id string) (*ManagementZone, error)
	CreateZone(ctx context.Context, zone *ManagementZone) error
	DeleteZone(ctx context.Context, id string) error
	ActivateZone(ctx context.Context, id string) error
	ZoneStatistics(ctx context.Context, id string) (map[string]interface{}, error)
}

// DataFlowClient manages probes, ranges, credentials, and protocols.
type DataFlowClient interface {
	ListProbes(ctx context.Context) ([]Probe, error)
	GetProbe(ctx context.Context, name string) (*Probe, error)
	AddRange(ctx context.Context, probe string, r *ProbeRange) error
	UpdateRange(ctx context.Context, probe string, r *ProbeRange) error
	DeleteRange(ctx context.Context, probe string, r *ProbeRange) error
	ListCredentials(ctx context.Context) ([]CredentialDomain, error)
	ListDomains(ctx context.Context) ([]ProbeDomain, error)
	CheckCredential(ctx context.Context, credentialID string, req *AvailabilityCheckRequest) error
	ProbeStatus(ctx context.Context) (map[string]interface{}, error)
}

// IntegrationClient reads integration point configuration.
type IntegrationClient interface {
	ListIntegrationPoints(ctx context.Context) (map[string]IntegrationPoint, error)
	GetIntegrationPoint(ctx context.Context, name string, detail bool) (*IntegrationPoint, error)
}

// PackagesClient lists and manages deployed packages and content packs.
type PackagesClient interface {
	ListPackages(ctx context.Context) ([]Package, error)
	GetPackage(ctx context.Context, name string) (*Package, error)
	DeletePackage(ctx context.Context, name string) error
	ListContentPacks(ctx context.Context) ([]ContentPack, error)
	GetContentPack(ctx context.Context, version string) (*ContentPack, error)
}

// SettingsClient reads and writes administrative infrastructure settings,
// report recipients, and the LDAP configuration.
type SettingsClient interface {
	GetSetting(ctx context.Context, name, locale string) (*Setting, error)
	SetSetting(ctx context.Context, name, locale string, update *SettingUpdate) error
	ListRecipients(ctx context.Context) ([]Recipient, error)
	AddRecipient(ctx context.Context, recipient *Recipient) error
	UpdateRecipient(ctx context.Context, id string, recipient *Recipient) error
	DeleteRecipients(ctx context.Context, ids []string) error
	GetLDAPSettings(ctx context.Context) ([]LDAPConfiguration, error)
}

// ReportsClient generates change reports over views.
type ReportsClient interface {
	GetViewChangeReport(ctx context.Context, req *ChangeReportRequest) (map[string]interface{}, error)
	GenerateBlacklistReport(ctx context.Context, req *ChangeReportRequest) (*ChangeReport, error)
	GenerateWhitelistReport(ctx context.Context, req *ChangeReportRequest) (*ChangeReport, error)
}

// ReconciliationClient queries the reconciliation analyzer for CI match
// candidates and the operations that produced them.
type ReconciliationClient interface {
	FindCIs(ctx context.Context, name string) ([]ReconCI, error)
	GetOperations(ctx context.Context, ciID string) ([]ReconOperation, error)
	GetMatchReason(ctx context.Context, operationID, ciID string) (*ReconMatchReason, error)
}

// SystemClient reports server identity and health.
type SystemClient interface {
	GetVersion(ctx context.Context) (*VersionInfo, error)
	Ping(ctx context.Context, restrictToWriter, restrictToReader bool) (*PingStatus, error)
	GetLicenseReport(ctx context.Context) (*LicenseReport, error)
}

// Client is the full UCMDB API surface.
type Client interface {
	Topology() TopologyClient
	DataModel() DataModelClient
	Policies() PoliciesClient
	Discovery() DiscoveryClient
	ManagementZones() ManagementZonesClient
	DataFlow() DataFlowClient
	Integration() IntegrationClient
	Packages() PackagesClient
	Settings() SettingsClient
	Reports() ReportsClient
	Reconciliation() ReconciliationClient
	System() SystemClient

	// VersionGate exposes the client's version-compatibility gate, for
	// callers that want to gate their own operations or clear the cached
	// server version after an upgrade.
	VersionGate() *VersionGate
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}

// Config represents client configuration for building a ucmdb.Client.
//
// # Authentication precedence
//
//  1. AccessToken: if set, it is used directly as a static Bearer token.
//  2. Username/Password: the client posts to /authenticate to obtain a
//     bearer token and re-authenticates transparently when it expires.
//
// # Endpoints
//
// Endpoint may be a bare hostname, host:port, or a full URL. ucmdbclient.New
// normalizes it: "https://" is assumed if no scheme is present, the default
// port 8443 is appended if none was given, and the /rest-api base path is
// added. Containerized deployments commonly use port 443.
//
// # TLS
//
// SkipTLSVerify disables certificate verification, matching the original
// client's default posture against self-signed UCMDB certificates. It is
// honored only when UCMDB_DEV_MODE is set to "true" or "1"; production
// deployments should install the server certificate instead.
type Config struct {
	// Endpoint: UCMDB server hostname, host:port, or full URL.
	Endpoint string

	// Username: account used against POST /authenticate.
	Username string
	// Password: account password.
	Password string
	// ClientContext: numeric client context identifier sent during
	// authentication. Zero means the default context (1).
	ClientContext int
	// AccessToken: pre-issued bearer token, used directly when set.
	AccessToken string

	// HTTPTimeout: per-request timeout where supported; most calls should
	// rely on context deadlines.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, connection errors). If 0, a sensible default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and the
	// version gate.
	Logger Logger
	// SkipTLSVerify: see the TLS section above.
	SkipTLSVerify bool
	// UserAgent: overrides the default User-Agent header.
	UserAgent string

	// VersionCache: backend for resolved server version strings. Nil
	// selects an in-memory cache private to this client; a NATS KV backend
	// can be used to share resolutions across processes.
	VersionCache *CacheConfig

	// ResolveVersionOnInit: resolve and cache the server version during
	// construction, so the first gated call does not pay for the lookup.
	// Resolution failures are ignored; the gate fails open on them anyway.
	ResolveVersionOnInit bool
}
