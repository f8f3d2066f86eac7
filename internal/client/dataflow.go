package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// DataFlowClient implements ucmdb.DataFlowClient.
type DataFlowClient struct {
	httpClient   *http.Client
	versionGate  *ucmdb.VersionGate
	serverID     string
	fetchVersion ucmdb.VersionFetchFunc
}

// NewDataFlowClient creates a new data flow management client.
func NewDataFlowClient(httpClient *http.Client, versionGate *ucmdb.VersionGate, serverID string, fetchVersion ucmdb.VersionFetchFunc) *DataFlowClient {
	return &DataFlowClient{
		httpClient:   httpClient,
		versionGate:  versionGate,
		serverID:     serverID,
		fetchVersion: fetchVersion,
	}
}

// ListProbes implements ucmdb.DataFlowClient.ListProbes.
func (c *DataFlowClient) ListProbes(ctx context.Context) ([]ucmdb.Probe, error) {
	resp, err := c.httpClient.Get(ctx, "/dataflowmanagement/probes", nil)
	if err != nil {
		return nil, fmt.Errorf("listing probes: %w", err)
	}

	var list ucmdb.ProbeList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing probes response: %w", err)
	}

	return list.Items, nil
}

// GetProbe implements ucmdb.DataFlowClient.GetProbe. The single-probe
// response includes the probe's assigned ranges.
func (c *DataFlowClient) GetProbe(ctx context.Context, name string) (*ucmdb.Probe, error) {
	resp, err := c.httpClient.Get(ctx, "/dataflowmanagement/probes/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting probe: %w", err)
	}

	var probe ucmdb.Probe

	err = json.Unmarshal(resp.Body, &probe)
	if err != nil {
		return nil, fmt.Errorf("parsing probe response: %w", err)
	}

	return &probe, nil
}

// AddRange implements ucmdb.DataFlowClient.AddRange.
func (c *DataFlowClient) AddRange(ctx context.Context, probe string, r *ucmdb.ProbeRange) error {
	_, err := c.httpClient.Post(ctx, probeRangesPath(probe), r)
	if err != nil {
		return fmt.Errorf("adding probe range: %w", err)
	}

	return nil
}

// UpdateRange implements ucmdb.DataFlowClient.UpdateRange.
func (c *DataFlowClient) UpdateRange(ctx context.Context, probe string, r *ucmdb.ProbeRange) error {
	_, err := c.httpClient.Patch(ctx, probeRangesPath(probe), r)
	if err != nil {
		return fmt.Errorf("updating probe range: %w", err)
	}

	return nil
}

// DeleteRange implements ucmdb.DataFlowClient.DeleteRange. The range to
// remove is carried in the request body.
func (c *DataFlowClient) DeleteRange(ctx context.Context, probe string, r *ucmdb.ProbeRange) error {
	_, err := c.httpClient.Do(ctx, &http.Request{
		Method: "DELETE",
		Path:   probeRangesPath(probe),
		Body:   r,
	})
	if err != nil {
		return fmt.Errorf("deleting probe range: %w", err)
	}

	return nil
}

// ListCredentials implements ucmdb.DataFlowClient.ListCredentials.
func (c *DataFlowClient) ListCredentials(ctx context.Context) ([]ucmdb.CredentialDomain, error) {
	resp, err := c.httpClient.Get(ctx, "/dataflowmanagement/credentials", nil)
	if err != nil {
		return nil, fmt.Errorf("listing credentials: %w", err)
	}

	var domains []ucmdb.CredentialDomain

	err = json.Unmarshal(resp.Body, &domains)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials response: %w", err)
	}

	return domains, nil
}

// ListDomains implements ucmdb.DataFlowClient.ListDomains.
func (c *DataFlowClient) ListDomains(ctx context.Context) ([]ucmdb.ProbeDomain, error) {
	resp, err := c.httpClient.Get(ctx, "/dataflowmanagement/domains", nil)
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	var domains []ucmdb.ProbeDomain

	err = json.Unmarshal(resp.Body, &domains)
	if err != nil {
		return nil, fmt.Errorf("parsing domains response: %w", err)
	}

	return domains, nil
}

// CheckCredential implements ucmdb.DataFlowClient.CheckCredential: it asks a
// probe to verify a credential against a target address.
func (c *DataFlowClient) CheckCredential(ctx context.Context, credentialID string, req *ucmdb.AvailabilityCheckRequest) error {
	path := "/dataflowmanagement/credentials/" + url.PathEscape(credentialID) + "/availability"

	_, err := c.httpClient.Post(ctx, path, req)
	if err != nil {
		return fmt.Errorf("checking credential: %w", err)
	}

	return nil
}

// ProbeStatus implements ucmdb.DataFlowClient.ProbeStatus. The dashboard
// returns one runtime summary per probe, keyed by probe name; the summary
// shape varies across releases so it stays untyped. The dashboard endpoint
// only exists on 24.2 and later.
func (c *DataFlowClient) ProbeStatus(ctx context.Context) (map[string]interface{}, error) {
	err := c.versionGate.Check(ctx, ucmdb.VersionRequirement{
		Operation:  "ProbeStatus",
		MinVersion: "24.2",
		ServerID:   c.serverID,
	}, c.fetchVersion)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/uiserver/probeService/dashboard/summary", nil)
	if err != nil {
		return nil, fmt.Errorf("getting probe status: %w", err)
	}

	var status map[string]interface{}

	err = json.Unmarshal(resp.Body, &status)
	if err != nil {
		return nil, fmt.Errorf("parsing probe status response: %w", err)
	}

	return status, nil
}

func probeRangesPath(probe string) string {
	return "/dataflowmanagement/probes/" + url.PathEscape(probe) + "/ranges"
}
