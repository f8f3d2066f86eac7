package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// packageServer serves the version endpoint plus the package manager paths so
// gated operations can be exercised end to end.
func packageServer(t *testing.T, contentPackVersion string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/uiserver/dashboard/versions/getVersion":
			_ = json.NewEncoder(w).Encode(ucmdb.VersionInfo{ContentPackVersion: contentPackVersion})
		case "/packagemanager/packages":
			_ = json.NewEncoder(w).Encode([]ucmdb.Package{
				{Name: "AutoDiscoveryContent", Version: "25.1", Factory: true},
				{Name: "MyCustomPackage", Version: "1.0"},
			})
		case "/packagemanager/contentpacks":
			_ = json.NewEncoder(w).Encode([]ucmdb.ContentPack{
				{Version: "25.1", CPStatus: "deployed"},
			})
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
}

func TestPackagesClient_ListPackages(t *testing.T) {
	// A quarterly 23.4 release falls in October, past the May cutover, so the
	// package manager surface is available.
	server := packageServer(t, "23.4")
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	packages, err := client.Packages().ListPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, "AutoDiscoveryContent", packages[0].Name)
	assert.True(t, packages[0].Factory)
}

func TestPackagesClient_ListPackages_VersionTooLow(t *testing.T) {
	server := packageServer(t, "23.1")
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.Packages().ListPackages(context.Background())
	require.Error(t, err)

	var versionErr *ucmdb.VersionError
	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, "ListPackages", versionErr.Operation)
	assert.Equal(t, "2023.05", versionErr.Required)
	assert.Equal(t, "23.1", versionErr.Actual)
}

func TestPackagesClient_GetPackage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/packagemanager/packages/MyCustomPackage", r.URL.Path)

		_ = json.NewEncoder(w).Encode(ucmdb.Package{
			Name:         "MyCustomPackage",
			Version:      "1.0",
			Dependencies: []string{"AutoDiscoveryContent"},
		})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	pkg, err := client.Packages().GetPackage(context.Background(), "MyCustomPackage")
	require.NoError(t, err)
	assert.Equal(t, []string{"AutoDiscoveryContent"}, pkg.Dependencies)
}

func TestPackagesClient_DeletePackage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/packagemanager/packages/MyCustomPackage", r.URL.Path)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	err = client.Packages().DeletePackage(context.Background(), "MyCustomPackage")
	require.NoError(t, err)
}

func TestPackagesClient_ListContentPacks(t *testing.T) {
	server := packageServer(t, "2024.01")
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	packs, err := client.Packages().ListContentPacks(context.Background())
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, "deployed", packs[0].CPStatus)
}

func TestPackagesClient_GetContentPack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/uiserver/dashboard/versions/getVersion":
			_ = json.NewEncoder(w).Encode(ucmdb.VersionInfo{ContentPackVersion: "2024.01"})
		case "/packagemanager/contentpacks/25.1":
			_ = json.NewEncoder(w).Encode(ucmdb.ContentPack{
				Version:                "25.1",
				CPStatus:               "deploying",
				CPDeploymentProgress:   "installing packages",
				CPDeploymentPercentage: "40",
			})
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	pack, err := client.Packages().GetContentPack(context.Background(), "25.1")
	require.NoError(t, err)
	assert.Equal(t, "deploying", pack.CPStatus)
	assert.Equal(t, "40", pack.CPDeploymentPercentage)
}
