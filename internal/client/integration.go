package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// IntegrationClient implements ucmdb.IntegrationClient.
type IntegrationClient struct {
	httpClient *http.Client
}

// NewIntegrationClient creates a new integration client.
func NewIntegrationClient(httpClient *http.Client) *IntegrationClient {
	return &IntegrationClient{
		httpClient: httpClient,
	}
}

// ListIntegrationPoints implements
// ucmdb.IntegrationClient.ListIntegrationPoints. The server keys the result
// by integration point name.
func (c *IntegrationClient) ListIntegrationPoints(ctx context.Context) (map[string]ucmdb.IntegrationPoint, error) {
	resp, err := c.httpClient.Get(ctx, "/integration/integrationpoints", nil)
	if err != nil {
		return nil, fmt.Errorf("listing integration points: %w", err)
	}

	var points map[string]ucmdb.IntegrationPoint

	err = json.Unmarshal(resp.Body, &points)
	if err != nil {
		return nil, fmt.Errorf("parsing integration points response: %w", err)
	}

	return points, nil
}

// GetIntegrationPoint implements
// ucmdb.IntegrationClient.GetIntegrationPoint. With detail enabled the
// server expands adapter configuration alongside the job counters.
func (c *IntegrationClient) GetIntegrationPoint(ctx context.Context, name string, detail bool) (*ucmdb.IntegrationPoint, error) {
	path := "/integration/integrationpoints/" + url.PathEscape(name)

	resp, err := c.httpClient.Get(ctx, path, url.Values{
		"detail": []string{strconv.FormatBool(detail)},
	})
	if err != nil {
		return nil, fmt.Errorf("getting integration point: %w", err)
	}

	var point ucmdb.IntegrationPoint

	err = json.Unmarshal(resp.Body, &point)
	if err != nil {
		return nil, fmt.Errorf("parsing integration point response: %w", err)
	}

	return &point, nil
}
