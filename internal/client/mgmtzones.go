package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// ManagementZonesClient implements ucmdb.ManagementZonesClient. Zones are
// CMS UI management zones, not UCMDB local client management zones.
type ManagementZonesClient struct {
	httpClient *http.Client
}

// NewManagementZonesClient creates a new management zones client.
func NewManagementZonesClient(httpClient *http.Client) *ManagementZonesClient {
	return &ManagementZonesClient{
		httpClient: httpClient,
	}
}

// ListZones implements ucmdb.ManagementZonesClient.ListZones.
func (c *ManagementZonesClient) ListZones(ctx context.Context) ([]ucmdb.ManagementZone, error) {
	resp, err := c.httpClient.Get(ctx, "/discovery/managementzones", nil)
	if err != nil {
		return nil, fmt.Errorf("listing management zones: %w", err)
	}

	var list ucmdb.ManagementZoneList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing management zones response: %w", err)
	}

	return list.Items, nil
}

// GetZone implements ucmdb.ManagementZonesClient.GetZone. The server wraps
// the zone in a single-entry items list.
func (c *ManagementZonesClient) GetZone(ctx context.Context, id string) (*ucmdb.ManagementZone, error) {
	resp, err := c.httpClient.Get(ctx, "/discovery/managementzones/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting management zone: %w", err)
	}

	var list ucmdb.ManagementZoneList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing management zone response: %w", err)
	}

	if len(list.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", ucmdb.ErrZoneNotFound, id)
	}

	return &list.Items[0], nil
}

// CreateZone implements ucmdb.ManagementZonesClient.CreateZone.
func (c *ManagementZonesClient) CreateZone(ctx context.Context, zone *ucmdb.ManagementZone) error {
	_, err := c.httpClient.Post(ctx, "/discovery/managementzones", zone)
	if err != nil {
		return fmt.Errorf("creating management zone: %w", err)
	}

	return nil
}

// DeleteZone implements ucmdb.ManagementZonesClient.DeleteZone.
func (c *ManagementZonesClient) DeleteZone(ctx context.Context, id string) error {
	_, err := c.httpClient.Delete(ctx, "/discovery/managementzones/"+url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("deleting management zone: %w", err)
	}

	return nil
}

// ActivateZone implements ucmdb.ManagementZonesClient.ActivateZone.
func (c *ManagementZonesClient) ActivateZone(ctx context.Context, id string) error {
	_, err := c.httpClient.Do(ctx, &http.Request{
		Method: "PATCH",
		Path:   "/discovery/managementzones/" + url.PathEscape(id),
		Query:  url.Values{"operation": []string{"activate"}},
	})
	if err != nil {
		return fmt.Errorf("activating management zone: %w", err)
	}

	return nil
}

// ZoneStatistics implements ucmdb.ManagementZonesClient.ZoneStatistics. The
// statistics payload is release-dependent, so the result stays untyped.
func (c *ManagementZonesClient) ZoneStatistics(ctx context.Context, id string) (map[string]interface{}, error) {
	resp, err := c.httpClient.Get(ctx, "/discovery/results/statistics", url.Values{
		"mzoneId": []string{id},
	})
	if err != nil {
		return nil, fmt.Errorf("getting management zone statistics: %w", err)
	}

	var stats map[string]interface{}

	err = json.Unmarshal(resp.Body, &stats)
	if err != nil {
		return nil, fmt.Errorf("parsing management zone statistics response: %w", err)
	}

	return stats, nil
}
