package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// SystemClient implements ucmdb.SystemClient.
type SystemClient struct {
	httpClient  *http.Client
	versionGate *ucmdb.VersionGate
	serverID    string
}

// NewSystemClient creates a new system client.
func NewSystemClient(httpClient *http.Client, versionGate *ucmdb.VersionGate, serverID string) *SystemClient {
	return &SystemClient{
		httpClient:  httpClient,
		versionGate: versionGate,
		serverID:    serverID,
	}
}

// GetVersion implements ucmdb.SystemClient.GetVersion.
func (c *SystemClient) GetVersion(ctx context.Context) (*ucmdb.VersionInfo, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/uiserver/dashboard/versions/getVersion", nil)
	if err != nil {
		return nil, fmt.Errorf("getting server version: %w", err)
	}

	var info ucmdb.VersionInfo

	err = json.Unmarshal(resp.Body, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing version response: %w", err)
	}

	return &info, nil
}

// Ping implements ucmdb.SystemClient.Ping. The restrict flags narrow the
// health check to the writer or reader side of a clustered deployment.
func (c *SystemClient) Ping(ctx context.Context, restrictToWriter, restrictToReader bool) (*ucmdb.PingStatus, error) {
	query := url.Values{}
	if restrictToWriter {
		query.Set("restrictToWriter", "true")
	}

	if restrictToReader {
		query.Set("restrictToReader", "true")
	}

	if len(query) == 0 {
		query = nil
	}

	resp, err := c.httpClient.Get(ctx, "/ping", query)
	if err != nil {
		return nil, fmt.Errorf("pinging server: %w", err)
	}

	var status ucmdb.PingStatus

	err = json.Unmarshal(resp.Body, &status)
	if err != nil {
		return nil, fmt.Errorf("parsing ping response: %w", err)
	}

	return &status, nil
}

// GetLicenseReport implements ucmdb.SystemClient.GetLicenseReport. The
// license dashboard endpoint only exists on 23.4 and later.
func (c *SystemClient) GetLicenseReport(ctx context.Context) (*ucmdb.LicenseReport, error) {
	err := c.versionGate.Check(ctx, ucmdb.VersionRequirement{
		Operation:  "GetLicenseReport",
		MinVersion: "23.4",
		ServerID:   c.serverID,
	}, c.GetVersion)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/uiserver/license/report", nil)
	if err != nil {
		return nil, fmt.Errorf("getting license report: %w", err)
	}

	var report ucmdb.LicenseReport

	err = json.Unmarshal(resp.Body, &report)
	if err != nil {
		return nil, fmt.Errorf("parsing license report response: %w", err)
	}

	return &report, nil
}
