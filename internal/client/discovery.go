package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

const discoveryProfilePath = "/discovery/discoveryprofiles"

// DiscoveryClient implements ucmdb.DiscoveryClient.
type DiscoveryClient struct {
	httpClient   *http.Client
	versionGate  *ucmdb.VersionGate
	serverID     string
	fetchVersion ucmdb.VersionFetchFunc
}

// NewDiscoveryClient creates a new discovery client.
func NewDiscoveryClient(httpClient *http.Client, versionGate *ucmdb.VersionGate, serverID string, fetchVersion ucmdb.VersionFetchFunc) *DiscoveryClient {
	return &DiscoveryClient{
		httpClient:   httpClient,
		versionGate:  versionGate,
		serverID:     serverID,
		fetchVersion: fetchVersion,
	}
}

// ListJobGroups implements ucmdb.DiscoveryClient.ListJobGroups. The fields
// list narrows the returned attributes per group.
func (c *DiscoveryClient) ListJobGroups(ctx context.Context, fields []string) (*ucmdb.DiscoveryJobGroupList, error) {
	var query url.Values
	if len(fields) > 0 {
		query = url.Values{"fields": []string{strings.Join(fields, ",")}}
	}

	resp, err := c.httpClient.Get(ctx, discoveryProfilePath, query)
	if err != nil {
		return nil, fmt.Errorf("listing job groups: %w", err)
	}

	var list ucmdb.DiscoveryJobGroupList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing job groups response: %w", err)
	}

	return &list, nil
}

// GetJobGroup implements ucmdb.DiscoveryClient.GetJobGroup.
func (c *DiscoveryClient) GetJobGroup(ctx context.Context, name string) (*ucmdb.DiscoveryJobGroup, error) {
	resp, err := c.httpClient.Get(ctx, discoveryProfilePath+"/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting job group: %w", err)
	}

	var group ucmdb.DiscoveryJobGroup

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, fmt.Errorf("parsing job group response: %w", err)
	}

	return &group, nil
}

// CreateJobGroup implements ucmdb.DiscoveryClient.CreateJobGroup.
func (c *DiscoveryClient) CreateJobGroup(ctx context.Context, group *ucmdb.DiscoveryJobGroup) error {
	_, err := c.httpClient.Post(ctx, discoveryProfilePath, group)
	if err != nil {
		return fmt.Errorf("creating job group: %w", err)
	}

	return nil
}

// DeleteJobGroup implements ucmdb.DiscoveryClient.DeleteJobGroup.
func (c *DiscoveryClient) DeleteJobGroup(ctx context.Context, name string) error {
	_, err := c.httpClient.Delete(ctx, discoveryProfilePath+"/"+url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("deleting job group: %w", err)
	}

	return nil
}

// CreateProfile implements ucmdb.DiscoveryClient.CreateProfile. Discovery
// profiles were introduced with the 23.4 release.
func (c *DiscoveryClient) CreateProfile(ctx context.Context, profile *ucmdb.DiscoveryProfile) error {
	err := c.versionGate.Check(ctx, ucmdb.VersionRequirement{
		Operation:  "CreateProfile",
		MinVersion: "23.4",
		ServerID:   c.serverID,
	}, c.fetchVersion)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Post(ctx, discoveryProfilePath, profile)
	if err != nil {
		return fmt.Errorf("creating discovery profile: %w", err)
	}

	return nil
}

// DeleteProfile implements ucmdb.DiscoveryClient.DeleteProfile.
func (c *DiscoveryClient) DeleteProfile(ctx context.Context, name string) error {
	err := c.versionGate.Check(ctx, ucmdb.VersionRequirement{
		Operation:  "DeleteProfile",
		MinVersion: "23.4",
		ServerID:   c.serverID,
	}, c.fetchVersion)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, discoveryProfilePath+"/"+url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("deleting discovery profile: %w", err)
	}

	return nil
}
