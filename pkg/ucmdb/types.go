package ucmdb

// CI represents a single configuration item.
type CI struct {
	UCMDBID      string                 `json:"ucmdbId"                yaml:"ucmdbId"`
	GlobalID     string                 `json:"globalId,omitempty"     yaml:"globalId,omitempty"`
	Type         string                 `json:"type"                   yaml:"type"`
	Properties   map[string]interface{} `json:"properties,omitempty"   yaml:"properties,omitempty"`
	Label        string                 `json:"label,omitempty"        yaml:"label,omitempty"`
	DisplayLabel string                 `json:"displayLabel,omitempty" yaml:"displayLabel,omitempty"`
}

// Relation represents a relationship between two CIs. End1ID and End2ID refer
// to CI identifiers, which may be temporary IDs inside a bulk definition.
type Relation struct {
	UCMDBID    string                 `json:"ucmdbId"              yaml:"ucmdbId"`
	Type       string                 `json:"type"                 yaml:"type"`
	End1ID     string                 `json:"end1Id"               yaml:"end1Id"`
	End2ID     string                 `json:"end2Id"               yaml:"end2Id"`
	Properties map[string]interface{} `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// TopologyResult is the response of a view run or topology query. When the
// result exceeds the requested chunk size, CIs and Relations hold only the
// initial batch and QueryResultID/NumberOfChunks describe the remaining
// chunks.
type TopologyResult struct {
	CIs            []CI       `json:"cis"                      yaml:"cis"`
	Relations      []Relation `json:"relations"                yaml:"relations"`
	QueryResultID  string     `json:"queryResultId,omitempty"  yaml:"queryResultId,omitempty"`
	NumberOfChunks int        `json:"numberOfChunks,omitempty" yaml:"numberOfChunks,omitempty"`
}

// TopologyQueryNode describes one node of a TQL query definition.
type TopologyQueryNode struct {
	Type                string                   `json:"type"`
	QueryIdentifier     string                   `json:"queryIdentifier"`
	Visible             bool                     `json:"visible,string"`
	IncludeSubtypes     bool                     `json:"includeSubtypes,string"`
	Layout              []string                 `json:"layout,omitempty"`
	AttributeConditions []map[string]interface{} `json:"attributeConditions"`
	LinkConditions      []map[string]interface{} `json:"linkConditions"`
	IDs                 []string                 `json:"ids"`
}

// TopologyQuery is an ad-hoc TQL query submitted to the topologyQuery
// endpoint.
type TopologyQuery struct {
	Nodes     []TopologyQueryNode      `json:"nodes"`
	Relations []map[string]interface{} `json:"relations"`
}

// CIBulk is a set of CIs and relations submitted or returned as one unit.
type CIBulk struct {
	CIs       []CI       `json:"cis"       yaml:"cis"`
	Relations []Relation `json:"relations" yaml:"relations"`
}

// AddCIsOptions control how the server identifies and merges a submitted CI
// bulk.
type AddCIsOptions struct {
	// IsGlobalID indicates the bulk's IDs are valid global IDs.
	IsGlobalID bool
	// ForceTemporaryID treats the bulk's IDs as temporary placeholders.
	ForceTemporaryID bool
	// IgnoreExisting skips CIs that already exist.
	IgnoreExisting bool
	// ReturnIDsMap requests a mapping from submitted IDs to the global IDs
	// generated by the server.
	ReturnIDsMap bool
	// IgnoreWhenCantIdentify drops CIs the reconciliation engine cannot
	// identify instead of failing the bulk.
	IgnoreWhenCantIdentify bool
}

// AddCIsResult reports the outcome of a bulk insert.
type AddCIsResult struct {
	IDsMap  map[string]string `json:"idsMap,omitempty"  yaml:"idsMap,omitempty"`
	Added   []string          `json:"addedCis,omitempty" yaml:"addedCis,omitempty"`
	Ignored []string          `json:"ignoredCis,omitempty" yaml:"ignoredCis,omitempty"`
	Removed []string          `json:"removedCis,omitempty" yaml:"removedCis,omitempty"`
	Updated []string          `json:"updatedCis,omitempty" yaml:"updatedCis,omitempty"`
}

// ClassDefinition describes a CI type in the class model.
type ClassDefinition struct {
	Name         string                   `json:"name"`
	DisplayName  string                   `json:"displayName"`
	Description  string                   `json:"description,omitempty"`
	Parent       string                   `json:"parent,omitempty"`
	Abstract     bool                     `json:"abstract,omitempty"`
	Attributes   []map[string]interface{} `json:"attributes,omitempty"`
	Qualifiers   []string                 `json:"qualifiers,omitempty"`
	IdentRuleXML string                   `json:"identificationRule,omitempty"`
	DefaultLabel string                   `json:"defaultLabel,omitempty"`
}

// VersionInfo is the server's version descriptor. ContentPackVersion uses the
// quarterly "YY.Q" release format; FullServerVersion is dotted semantic form.
type VersionInfo struct {
	ProductName            string `json:"productName"            yaml:"productName"`
	ServerBuildNumber      string `json:"serverBuildNumber"      yaml:"serverBuildNumber"`
	ContentPackBuildNumber string `json:"contentPackBuildNumber" yaml:"contentPackBuildNumber"`
	ContentPackVersion     string `json:"contentPackVersion"     yaml:"contentPackVersion"`
	FullServerVersion      string `json:"fullServerVersion"      yaml:"fullServerVersion"`
}

// PingStatus reports server reachability and role.
type PingStatus struct {
	Status struct {
		StatusCode   int    `json:"statusCode"   yaml:"statusCode"`
		ReasonPhrase string `json:"reasonPhrase" yaml:"reasonPhrase"`
		Message      string `json:"message"      yaml:"message"`
	} `json:"status" yaml:"status"`
}

// LicenseDetails describes one installed license.
type LicenseDetails struct {
	Description    string `json:"description"    yaml:"description"`
	LicenseType    string `json:"licenseType"    yaml:"licenseType"`
	ExpirationDate int64  `json:"expirationDate" yaml:"expirationDate"`
	StartDate      int64  `json:"startDate"      yaml:"startDate"`
	Capacity       int    `json:"capacity"       yaml:"capacity"`
	Active         bool   `json:"active"         yaml:"active"`
}

// LicenseReport summarizes license consumption across the server.
type LicenseReport struct {
	FullServerCount  int              `json:"fullServerCount"          yaml:"fullServerCount"`
	BasicServerCount int              `json:"basicServerCount"         yaml:"basicServerCount"`
	UsedUnit         string           `json:"usedUnit"                 yaml:"usedUnit"`
	TotalLicenseUnit int              `json:"totalLicenseUnit"         yaml:"totalLicenseUnit"`
	TotalMDR         int              `json:"totalMDR"                 yaml:"totalMDR"`
	UsedMDR          int              `json:"usedMDR"                  yaml:"usedMDR"`
	RemainingDays    int              `json:"remainingDays"            yaml:"remainingDays"`
	UsedProbes       int              `json:"usedProbes"               yaml:"usedProbes"`
	MaxProbes        int              `json:"maxProbes"                yaml:"maxProbes"`
	Licenses         []LicenseDetails `json:"licenseDetailsCollection" yaml:"licenseDetailsCollection"`
	UCMDBFoundation  bool             `json:"ucmdbfoundation"          yaml:"ucmdbfoundation"`
	Operational      bool             `json:"operational"              yaml:"operational"`
}

// Policy is a compliance policy definition.
type Policy struct {
	Name         string `json:"name"         yaml:"name"`
	Path         string `json:"path"         yaml:"path"`
	SimplePolicy bool   `json:"simplePolicy" yaml:"simplePolicy"`
}

// ComplianceView maps a base view to the policy queries evaluated against it.
type ComplianceView struct {
	Name          string   `json:"name"          yaml:"name"`
	BaseViewName  string   `json:"baseViewName"  yaml:"baseViewName"`
	PolicyQueries []string `json:"policyQueries" yaml:"policyQueries"`
}

// ComplianceStatusCount is one row of a calculated compliance view:
// the number of CIs in a compliance bucket (COMPLIANT, NON-COMPLIANT,
// NON-APPLICABLE).
type ComplianceStatusCount struct {
	CIType string `json:"ciType" yaml:"ciType"`
	Count  int    `json:"count"  yaml:"count"`
}

// PathElement addresses one branch of a calculated view result tree.
type PathElement struct {
	PathElementID   string `json:"pathElementId"`
	PathElementType string `json:"pathElementType"`
}

// ChunkForPathRequest fetches one page of a calculated view execution.
type ChunkForPathRequest struct {
	ViewExecutionID string        `json:"viewExecutionId"`
	Path            []PathElement `json:"path"`
	ChunkNumber     int           `json:"chunkNumber"`
}

// ViewExecution is the response of a calculated view run: the execution
// handle plus the chunk count for each result path.
type ViewExecution struct {
	ViewExecutionID string                  `json:"viewExecutionId" yaml:"viewExecutionId"`
	StatusCounts    []ComplianceStatusCount `json:"statusCounts"    yaml:"statusCounts"`
	NumberOfChunks  int                     `json:"numberOfChunks"  yaml:"numberOfChunks"`
}

// ViewResultChunk is one page of a calculated view execution.
type ViewResultChunk struct {
	CIs            []CI       `json:"cis"                      yaml:"cis"`
	Relations      []Relation `json:"relations"                yaml:"relations"`
	ChunkNumber    int        `json:"chunkNumber,omitempty"    yaml:"chunkNumber,omitempty"`
	NumberOfChunks int        `json:"numberOfChunks,omitempty" yaml:"numberOfChunks,omitempty"`
}

// ElementCountRequest asks for the element count of one result path.
type ElementCountRequest struct {
	ViewExecutionID string        `json:"viewExecutionId"`
	Path            []PathElement `json:"path"`
}

// DiscoveryJob is one job inside a discovery job group.
type DiscoveryJob struct {
	JobName               string            `json:"jobName"               yaml:"jobName"`
	JobDisplayName        string            `json:"jobDisplayName"        yaml:"jobDisplayName"`
	AdapterName           string            `json:"adapterName"           yaml:"adapterName"`
	InputCI               string            `json:"inputCI"               yaml:"inputCI"`
	JobType               string            `json:"jobType,omitempty"     yaml:"jobType,omitempty"`
	Protocols             []string          `json:"protocols"             yaml:"protocols"`
	JobParameters         map[string]string `json:"jobParameters"         yaml:"jobParameters"`
	TriggerQueries        []string          `json:"triggerQueries"        yaml:"triggerQueries"`
	JobInvokeOnNewTrigger bool              `json:"jobInvokeOnNewTrigger" yaml:"jobInvokeOnNewTrigger"`
}

// DiscoveryJobGroup is a named set of discovery jobs.
type DiscoveryJobGroup struct {
	Name          string         `json:"name"                    yaml:"name"`
	ID            string         `json:"id"                      yaml:"id"`
	Type          string         `json:"type,omitempty"          yaml:"type,omitempty"`
	OOB           bool           `json:"oob"                     yaml:"oob"`
	Description   string         `json:"description,omitempty"   yaml:"description,omitempty"`
	DiscoveryType string         `json:"discoveryType,omitempty" yaml:"discoveryType,omitempty"`
	Jobs          []DiscoveryJob `json:"jobs"                    yaml:"jobs"`
}

// DiscoveryJobGroupList wraps the job-group listing response.
type DiscoveryJobGroupList struct {
	Items []DiscoveryJobGroup `json:"items" yaml:"items"`
}

// JobGroupRef names a job group inside a discovery profile definition.
type JobGroupRef struct {
	Name string `json:"name" yaml:"name"`
}

// DiscoveryProfile groups job groups into a reusable discovery profile.
type DiscoveryProfile struct {
	Name      string        `json:"name"      yaml:"name"`
	JobGroups []JobGroupRef `json:"jobGroups" yaml:"jobGroups"`
}

// ProbeRange is one IP range assigned to a data flow probe.
type ProbeRange struct {
	Range          string `json:"range"          yaml:"range"`
	Description    string `json:"description"    yaml:"description"`
	DefinitionType int    `json:"definitionType" yaml:"definitionType"`
	RangeType      int    `json:"rangeType"      yaml:"rangeType"`
	IPVersion      int    `json:"ipVersion"      yaml:"ipVersion"`
	Excluded       bool   `json:"excluded"       yaml:"excluded"`
}

// Probe describes a data flow probe and its assigned ranges.
type Probe struct {
	ProbeName            string         `json:"probeName"            yaml:"probeName"`
	Description          string         `json:"description"          yaml:"description"`
	ProbeVersion         string         `json:"probeVersion"         yaml:"probeVersion"`
	ProbeStatus          string         `json:"probeStatus"          yaml:"probeStatus"`
	ProbeIP              string         `json:"probeIp"              yaml:"probeIp"`
	ProbeOS              string         `json:"probeOS"              yaml:"probeOS"`
	DomainName           string         `json:"domainName"           yaml:"domainName"`
	RangeCount           int            `json:"rangeCount"           yaml:"rangeCount"`
	IPCount              int            `json:"ipCount"              yaml:"ipCount"`
	Ranges               [][]ProbeRange `json:"ranges"               yaml:"ranges"`
	VersionCompatibility string         `json:"versionCompatibility" yaml:"versionCompatibility"`
	LastAccessTime       int64          `json:"lastAccessTime"       yaml:"lastAccessTime"`
}

// CredentialProtocol is one credential entry under a protocol family.
type CredentialProtocol struct {
	HashParameters map[string]interface{} `json:"hashParameters" yaml:"hashParameters"`
	ProtocolIndex  int                    `json:"protocolIndex"  yaml:"protocolIndex"`
	NetAddress     *string                `json:"netAddress"     yaml:"netAddress"`
}

// CredentialDomain holds all credentials of one probe domain, keyed by
// protocol name.
type CredentialDomain struct {
	DomainName    string                          `json:"domainName"    yaml:"domainName"`
	Description   string                          `json:"description"   yaml:"description"`
	Type          string                          `json:"type"          yaml:"type"`
	Encrypt       bool                            `json:"encrypt"       yaml:"encrypt"`
	HashProtocols map[string][]CredentialProtocol `json:"hashProtocols" yaml:"hashProtocols"`
}

// AvailabilityCheckRequest probes a credential against one network address.
// Timeout is in milliseconds; slow networks may need more than the 60000
// default.
type AvailabilityCheckRequest struct {
	ProbeName string `json:"probeName"`
	IPAddress string `json:"ipAddress"`
	Timeout   int    `json:"timeout"`
}

// ProbeDomain is one configured probe domain with its resource counters.
type ProbeDomain struct {
	DomainName    string `json:"domainName"    yaml:"domainName"`
	Description   string `json:"description"   yaml:"description"`
	CredentialNum string `json:"credentialNum" yaml:"credentialNum"`
	ProbeNum      string `json:"probeNum"      yaml:"probeNum"`
}

// ProbeList wraps the probe listing response.
type ProbeList struct {
	Items []Probe `json:"items" yaml:"items"`
}

// IntegrationPoint reports the configuration and job counters of one
// integration point.
type IntegrationPoint struct {
	Name               string `json:"name"               yaml:"name"`
	AdapterName        string `json:"adapterName"        yaml:"adapterName"`
	Description        string `json:"description"        yaml:"description"`
	Enabled            bool   `json:"enabled"            yaml:"enabled"`
	Status             string `json:"status"             yaml:"status"`
	TotalPopulationJob int    `json:"totalPopulationJob" yaml:"totalPopulationJob"`
	ErrorPopulationJob int    `json:"errorPopulationJob" yaml:"errorPopulationJob"`
	TotalPushJob       int    `json:"totalPushJob"       yaml:"totalPushJob"`
	ErrorPushJob       int    `json:"errorPushJob"       yaml:"errorPushJob"`
	ServerSide         bool   `json:"serverSide"         yaml:"serverSide"`
	BasedOnTriggerCI   bool   `json:"basedOnTriggerCI"   yaml:"basedOnTriggerCI"`
}

// Package describes one deployed package in the package manager.
type Package struct {
	Name             string   `json:"name"             yaml:"name"`
	DisplayName      string   `json:"displayName"      yaml:"displayName"`
	Description      string   `json:"description"      yaml:"description"`
	Version          string   `json:"version"          yaml:"version"`
	Category         string   `json:"category"         yaml:"category"`
	BuildNumber      string   `json:"buildNumber"      yaml:"buildNumber"`
	MinVersion       string   `json:"minVersion"       yaml:"minVersion"`
	MaxVersion       string   `json:"maxVersion"       yaml:"maxVersion"`
	Dependencies     []string `json:"dependencies"     yaml:"dependencies"`
	LastModifiedTime int64    `json:"lastModifiedTime" yaml:"lastModifiedTime"`
	Factory          bool     `json:"factory"          yaml:"factory"`
	Hidden           bool     `json:"hidden"           yaml:"hidden"`
}

// ContentPack describes one uploaded or deployed discovery content pack.
type ContentPack struct {
	Version                string   `json:"version"                yaml:"version"`
	CPStatus               string   `json:"cpStatus"               yaml:"cpStatus"`
	IncompliantClasses     []string `json:"incompliantClasses"     yaml:"incompliantClasses"`
	CPDeploymentProgress   string   `json:"cpDeploymentProgress"   yaml:"cpDeploymentProgress"`
	CPDeploymentPercentage string   `json:"cpDeploymentPercentage" yaml:"cpDeploymentPercentage"`
}

// Setting is one administrative infrastructure setting.
type Setting struct {
	Name         string `json:"name"         yaml:"name"`
	Value        string `json:"value"        yaml:"value"`
	ValueType    string `json:"valueType"    yaml:"valueType"`
	DefaultValue string `json:"defaultValue" yaml:"defaultValue"`
	FactoryValue string `json:"factoryValue" yaml:"factoryValue"`
	DisplayName  string `json:"displayName"  yaml:"displayName"`
	Description  string `json:"description"  yaml:"description"`
	RefreshRate  string `json:"refreshRate"  yaml:"refreshRate"`
	SectionName  string `json:"sectionName"  yaml:"sectionName"`
	Scope        string `json:"scope"        yaml:"scope"`
	Editable     bool   `json:"editable"     yaml:"editable"`
}

// SettingUpdate carries a new value for one setting.
type SettingUpdate struct {
	Value string `json:"value"`
}

// Recipient is a report/notification recipient.
type Recipient struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Name  string `json:"name"         yaml:"name"`
	Email string `json:"email"        yaml:"email"`
}

// ChangeReportRequest bounds a change report to a view and a time window.
// DateFrom and DateTo are epoch milliseconds.
type ChangeReportRequest struct {
	ViewName   string   `json:"viewName"`
	DateFrom   int64    `json:"dateFrom,string"`
	DateTo     int64    `json:"dateTo,string"`
	Attributes []string `json:"attributes"`
}

// ChangeProperty is a display property attached to a changed CI.
type ChangeProperty struct {
	Name  string `json:"name"  yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// AttributeChange is one recorded change of a CI attribute.
type AttributeChange struct {
	Attribute  string `json:"attribute"  yaml:"attribute"`
	OldValue   string `json:"oldValue"   yaml:"oldValue"`
	NewValue   string `json:"newValue"   yaml:"newValue"`
	Changer    string `json:"changer"    yaml:"changer"`
	ChangeDate int64  `json:"changeDate" yaml:"changeDate"`
}

// ChangedCI groups the recorded changes of one CI, keyed by attribute name.
type ChangedCI struct {
	CIID         string                       `json:"ciId"         yaml:"ciId"`
	DisplayLabel string                       `json:"displayLabel" yaml:"displayLabel"`
	ClassName    string                       `json:"className"    yaml:"className"`
	Properties   []ChangeProperty             `json:"properties"   yaml:"properties"`
	Changes      map[string][]AttributeChange `json:"changes"      yaml:"changes"`
}

// ChangeReport maps CI identifiers to their recorded changes.
type ChangeReport struct {
	Changes map[string]ChangedCI `json:"changes" yaml:"changes"`
}

// IPRangeProfile references an IP range group by its profile identifier.
type IPRangeProfile struct {
	IPRangeProfileID string `json:"ipRangeProfileId" yaml:"ipRangeProfileId"`
}

// DiscoveryActivity binds a discovery profile to a schedule and credentials
// inside a management zone.
type DiscoveryActivity struct {
	DiscoveryProfileID  string `json:"discoveryProfileId"  yaml:"discoveryProfileId"`
	ScheduleProfileID   string `json:"scheduleProfileId"   yaml:"scheduleProfileId"`
	CredentialProfileID string `json:"credentialProfileId" yaml:"credentialProfileId"`
}

// TriggerSummary counts trigger results inside a management zone.
type TriggerSummary struct {
	TotalCount      int `json:"totalCount"      yaml:"totalCount"`
	PendingCount    int `json:"pendingCount"    yaml:"pendingCount"`
	InProgressCount int `json:"inProgressCount" yaml:"inProgressCount"`
	SuccessCount    int `json:"successCount"    yaml:"successCount"`
	WarningCount    int `json:"warningCount"    yaml:"warningCount"`
	ErrorCount      int `json:"errorCount"      yaml:"errorCount"`
}

// ManagementZone is one CMS UI management zone: an IP scope bound to
// discovery activities and their schedules.
type ManagementZone struct {
	ID                  string              `json:"id,omitempty"             yaml:"id,omitempty"`
	Name                string              `json:"name"                     yaml:"name"`
	Description         string              `json:"description,omitempty"    yaml:"description,omitempty"`
	Activated           bool                `json:"activated"                yaml:"activated"`
	IPRangeProfiles     []IPRangeProfile    `json:"ipRangeProfiles"          yaml:"ipRangeProfiles"`
	DiscoveryActivities []DiscoveryActivity `json:"discoveryActivities"      yaml:"discoveryActivities"`
	TriggerSummary      *TriggerSummary     `json:"triggerSummary,omitempty" yaml:"triggerSummary,omitempty"`
	ResultCICount       int                 `json:"resultCICount,omitempty"  yaml:"resultCICount,omitempty"`
}

// ManagementZoneList wraps the management zone listing response.
type ManagementZoneList struct {
	Items []ManagementZone `json:"items" yaml:"items"`
}

// ReconCI is one candidate returned by a reconciliation analyzer lookup.
type ReconCI struct {
	CmdbID string `json:"cmdb_id" yaml:"cmdb_id"`
	Name   string `json:"name"    yaml:"name"`
	Type   string `json:"type"    yaml:"type"`
}

// ReconOperation describes one data-in operation the reconciliation engine
// recorded for a CI.
type ReconOperation struct {
	Timestamp                     int64                  `json:"timestamp"`
	ID                            string                 `json:"id"`
	OperationType                 string                 `json:"operationType"`
	ErrorMessage                  string                 `json:"errorMessage"`
	CustomerID                    string                 `json:"customerId"`
	Changer                       string                 `json:"changer"`
	DataToUpdateSize              int                    `json:"dataToUpdateSize"`
	ReferenceDataSize             int                    `json:"referenceDataSize"`
	IdentificationDuration        int                    `json:"identificationDuration"`
	DataInAnalysisDuration        int                    `json:"dataInAnalysisDuration"`
	MaxTopologyLevel              int                    `json:"maxTopologyLevel"`
	NumberOfMergedCIs             int                    `json:"numberOfMergedCIs"`
	NumberOfTypeChanges           int                    `json:"numberOfTypeChanges"`
	NumberOfMergeOperations       int                    `json:"numberOfMergeOperations"`
	NumberOfIgnoresFromCmdb       int                    `json:"numberOfIgnoresFromCmdb"`
	NumberOfIgnoresInBulk         int                    `json:"numberOfIgnoresInBulk"`
	NumberOfObjectsToUpdateByType map[string]int         `json:"numberOfObjectsToUpdateByType"`
	Statistics                    map[string]interface{} `json:"statistics"`
	Properties                    map[string]interface{} `json:"properties"`
	ChangedAttributes             []string               `json:"changedAttributes"`
}

// ReconMatchReason explains how an operation matched a CI.
type ReconMatchReason struct {
	Identifications []map[string]interface{} `json:"identifications" yaml:"identifications"`
	Matches         []map[string]interface{} `json:"matches"         yaml:"matches"`
}

// LDAPConnection holds the directory connection parameters.
type LDAPConnection struct {
	URL                string `json:"url"                yaml:"url"`
	SearchUser         string `json:"searchUser"         yaml:"searchUser"`
	SearchUserPassword string `json:"searchUserPassword" yaml:"searchUserPassword"`
	EnabledSearchForDN bool   `json:"enabledSearchForDN" yaml:"enabledSearchForDN"`
}

// LDAPSearch scopes one directory search.
type LDAPSearch struct {
	Base   string `json:"base"   yaml:"base"`
	Filter string `json:"filter" yaml:"filter"`
	Scope  string `json:"scope"  yaml:"scope"`
}

// LDAPGroupSettings configures how groups are resolved.
type LDAPGroupSettings struct {
	GroupSearch          LDAPSearch `json:"groupSearch"          yaml:"groupSearch"`
	RootGroupSearch      LDAPSearch `json:"rootGroupSearch"      yaml:"rootGroupSearch"`
	UseBottomUpAlgorithm bool       `json:"useBottomUpAlgorithm" yaml:"useBottomUpAlgorithm"`
}

// LDAPGroupClass maps a group object class onto directory attributes. The
// static mapping leaves Enabled unset; the dynamic one carries it.
type LDAPGroupClass struct {
	Enabled              bool   `json:"enabled,omitempty"    yaml:"enabled,omitempty"`
	GroupClass           string `json:"groupClass"           yaml:"groupClass"`
	NameAttribute        string `json:"nameAttribute"        yaml:"nameAttribute"`
	DescriptionAttribute string `json:"descriptionAttribute" yaml:"descriptionAttribute"`
	DisplayNameAttribute string `json:"displayNameAttribute" yaml:"displayNameAttribute"`
	MemberAttribute      string `json:"memberAttribute"      yaml:"memberAttribute"`
}

// LDAPUserSearch bounds user lookups.
type LDAPUserSearch struct {
	Base                       string `json:"base"`
	Filter                     string `json:"filter"`
	Scope                      string `json:"scope"`
	NrOfUsersRetrievedAtOnce   int    `json:"nrOfUsersRetrievedAtOnce"`
	DistinguishedNameAttribute string `json:"distinguishedNameAttribute"`
}

// LDAPUserSettings configures how users are resolved.
type LDAPUserSettings struct {
	UserClass                    string         `json:"userClass"`
	DisplayNameAttribute         string         `json:"displayNameAttribute"`
	UniqueIDAttribute            string         `json:"uniqueIdAttribute"`
	UserFilter                   string         `json:"userFilter"`
	DisplayUsersGroup            bool           `json:"displayUsersGroup"`
	SplitRepositoryFromLoginName bool           `json:"splitRepositoryFromLoginName"`
	UserSearch                   LDAPUserSearch `json:"userSearch"`
}

// LDAPIntegration assigns imported users to a default group.
type LDAPIntegration struct {
	DefaultGroup string `json:"defaultGroup" yaml:"defaultGroup"`
	Priority     int    `json:"priority"     yaml:"priority"`
}

// LDAPConfiguration is one configured directory server.
type LDAPConfiguration struct {
	Connection   LDAPConnection    `json:"connection"   yaml:"connection"`
	Group        LDAPGroupSettings `json:"group"        yaml:"group"`
	StaticGroup  LDAPGroupClass    `json:"staticGroup"  yaml:"staticGroup"`
	DynamicGroup LDAPGroupClass    `json:"dynamicGroup" yaml:"dynamicGroup"`
	User         LDAPUserSettings  `json:"user"         yaml:"user"`
	Integration  LDAPIntegration   `json:"integration"  yaml:"integration"`
}

// ExposeSort orders exposed CIs by an attribute.
type ExposeSort struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Order     string `json:"order"     yaml:"order"`
}

// ExposeCondition filters exposed CIs on one attribute column.
type ExposeCondition struct {
	Column   string `json:"column"`
	Value    string `json:"value"`
	Operator string `json:"filteringAttributeCondOperator"`
}

// ExposeFilter combines filter conditions.
type ExposeFilter struct {
	LogicalOperator string            `json:"logicalOperator"`
	Conditions      []ExposeCondition `json:"conditions"`
}

// ExposeQuery describes a pattern of CIs to expose: CI type, attribute
// layout, ordering, and filtering.
type ExposeQuery struct {
	Type            string        `json:"type"`
	Layout          []string      `json:"layout"`
	IncludeSubtypes bool          `json:"includeSubtypes,string"`
	SortBy          []ExposeSort  `json:"sortBy,omitempty"`
	Filtering       *ExposeFilter `json:"filtering,omitempty"`
}

// ExposedCI is one element returned by an expose query.
type ExposedCI struct {
	UCMDBID      string                 `json:"ucmdbId"      yaml:"ucmdbId"`
	GlobalID     string                 `json:"globalId"     yaml:"globalId"`
	Type         string                 `json:"type"         yaml:"type"`
	Properties   map[string]interface{} `json:"properties"   yaml:"properties"`
	DisplayLabel string                 `json:"displayLabel" yaml:"displayLabel"`
}
