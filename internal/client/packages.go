package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// packageManagerMinVersion gates the package manager REST surface, which the
// vendor added with the 2023.05 release.
const packageManagerMinVersion = "2023.05"

// PackagesClient implements ucmdb.PackagesClient.
type PackagesClient struct {
	httpClient   *http.Client
	versionGate  *ucmdb.VersionGate
	serverID     string
	fetchVersion ucmdb.VersionFetchFunc
}

// NewPackagesClient creates a new package manager client.
func NewPackagesClient(httpClient *http.Client, versionGate *ucmdb.VersionGate, serverID string, fetchVersion ucmdb.VersionFetchFunc) *PackagesClient {
	return &PackagesClient{
		httpClient:   httpClient,
		versionGate:  versionGate,
		serverID:     serverID,
		fetchVersion: fetchVersion,
	}
}

func (c *PackagesClient) checkVersion(ctx context.Context, operation string) error {
	return c.versionGate.Check(ctx, ucmdb.VersionRequirement{
		Operation:  operation,
		MinVersion: packageManagerMinVersion,
		ServerID:   c.serverID,
	}, c.fetchVersion)
}

// ListPackages implements ucmdb.PackagesClient.ListPackages.
func (c *PackagesClient) ListPackages(ctx context.Context) ([]ucmdb.Package, error) {
	err := c.checkVersion(ctx, "ListPackages")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/packagemanager/packages", nil)
	if err != nil {
		return nil, fmt.Errorf("listing packages: %w", err)
	}

	var packages []ucmdb.Package

	err = json.Unmarshal(resp.Body, &packages)
	if err != nil {
		return nil, fmt.Errorf("parsing packages response: %w", err)
	}

	return packages, nil
}

// GetPackage implements ucmdb.PackagesClient.GetPackage.
func (c *PackagesClient) GetPackage(ctx context.Context, name string) (*ucmdb.Package, error) {
	resp, err := c.httpClient.Get(ctx, "/packagemanager/packages/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting package: %w", err)
	}

	var pkg ucmdb.Package

	err = json.Unmarshal(resp.Body, &pkg)
	if err != nil {
		return nil, fmt.Errorf("parsing package response: %w", err)
	}

	return &pkg, nil
}

// DeletePackage implements ucmdb.PackagesClient.DeletePackage.
func (c *PackagesClient) DeletePackage(ctx context.Context, name string) error {
	_, err := c.httpClient.Delete(ctx, "/packagemanager/packages/"+url.PathEscape(name))
	if err != nil {
		return fmt.Errorf("deleting package: %w", err)
	}

	return nil
}

// ListContentPacks implements ucmdb.PackagesClient.ListContentPacks.
func (c *PackagesClient) ListContentPacks(ctx context.Context) ([]ucmdb.ContentPack, error) {
	err := c.checkVersion(ctx, "ListContentPacks")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/packagemanager/contentpacks", nil)
	if err != nil {
		return nil, fmt.Errorf("listing content packs: %w", err)
	}

	var packs []ucmdb.ContentPack

	err = json.Unmarshal(resp.Body, &packs)
	if err != nil {
		return nil, fmt.Errorf("parsing content packs response: %w", err)
	}

	return packs, nil
}

// GetContentPack implements ucmdb.PackagesClient.GetContentPack. Content
// packs are addressed by their version string.
func (c *PackagesClient) GetContentPack(ctx context.Context, version string) (*ucmdb.ContentPack, error) {
	err := c.checkVersion(ctx, "GetContentPack")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "/packagemanager/contentpacks/"+url.PathEscape(version), nil)
	if err != nil {
		return nil, fmt.Errorf("getting content pack: %w", err)
	}

	var pack ucmdb.ContentPack

	err = json.Unmarshal(resp.Body, &pack)
	if err != nil {
		return nil, fmt.Errorf("parsing content pack response: %w", err)
	}

	return &pack, nil
}
