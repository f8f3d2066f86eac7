package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemClient_GetVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/uiserver/dashboard/versions/getVersion", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_ = json.NewEncoder(w).Encode(ucmdb.VersionInfo{
			ProductName:        "UCMDB",
			ContentPackVersion: "24.2",
			FullServerVersion:  "2024.05",
		})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	info, err := client.System().GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "UCMDB", info.ProductName)
	assert.Equal(t, "24.2", info.ContentPackVersion)
}

func TestSystemClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("restrictToWriter"))

		var status ucmdb.PingStatus
		status.Status.StatusCode = 200
		status.Status.ReasonPhrase = "OK"
		_ = json.NewEncoder(w).Encode(status)
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	status, err := client.System().Ping(context.Background(), true, false)
	require.NoError(t, err)
	assert.Equal(t, 200, status.Status.StatusCode)
	assert.Equal(t, "OK", status.Status.ReasonPhrase)
}

func TestSystemClient_GetLicenseReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/uiserver/dashboard/versions/getVersion":
			_ = json.NewEncoder(w).Encode(ucmdb.VersionInfo{ContentPackVersion: "24.2"})
		case "/uiserver/license/report":
			_ = json.NewEncoder(w).Encode(ucmdb.LicenseReport{
				UsedUnit:         "OSI",
				TotalLicenseUnit: 1000,
				RemainingDays:    120,
				Operational:      true,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	report, err := client.System().GetLicenseReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1000, report.TotalLicenseUnit)
	assert.True(t, report.Operational)
}

func TestSystemClient_GetLicenseReport_VersionTooLow(t *testing.T) {
	var licenseCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/uiserver/dashboard/versions/getVersion":
			_ = json.NewEncoder(w).Encode(ucmdb.VersionInfo{ContentPackVersion: "23.1"})
		case "/uiserver/license/report":
			licenseCalls.Add(1)
			_ = json.NewEncoder(w).Encode(ucmdb.LicenseReport{})
		}
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.System().GetLicenseReport(context.Background())
	require.Error(t, err)

	var versionErr *ucmdb.VersionError
	require.ErrorAs(t, err, &versionErr)
	assert.Equal(t, "GetLicenseReport", versionErr.Operation)
	assert.Equal(t, "23.4", versionErr.Required)
	assert.Equal(t, "23.1", versionErr.Actual)

	// The license endpoint was never touched.
	assert.Equal(t, int32(0), licenseCalls.Load())
}

func TestSystemClient_GetLicenseReport_VersionUnresolvable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/uiserver/dashboard/versions/getVersion":
			// Older builds do not expose the version endpoint at all.
			w.WriteHeader(http.StatusNotFound)
		case "/uiserver/license/report":
			_ = json.NewEncoder(w).Encode(ucmdb.LicenseReport{RemainingDays: 90})
		}
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	// Unresolvable version fails open: the call proceeds.
	report, err := client.System().GetLicenseReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 90, report.RemainingDays)
}

func TestSystemClient_VersionCachedAcrossGatedCalls(t *testing.T) {
	var versionCalls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/uiserver/dashboard/versions/getVersion":
			versionCalls.Add(1)
			_ = json.NewEncoder(w).Encode(ucmdb.VersionInfo{ContentPackVersion: "24.2"})
		case "/uiserver/license/report":
			_ = json.NewEncoder(w).Encode(ucmdb.LicenseReport{})
		}
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = client.System().GetLicenseReport(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), versionCalls.Load())

	// Clearing the gate's cache forces a re-fetch on the next gated call.
	client.VersionGate().ClearCache()

	_, err = client.System().GetLicenseReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), versionCalls.Load())
}
