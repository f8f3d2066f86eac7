package ucmdbclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdbclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates client with config", func(t *testing.T) {
		client, err := ucmdbclient.New(context.Background(), &ucmdb.Config{
			Endpoint: "cmdb.example.com",
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := ucmdbclient.New(context.Background(), nil)
		assert.ErrorIs(t, err, ucmdb.ErrConfigRequired)
	})

	t.Run("missing endpoint", func(t *testing.T) {
		_, err := ucmdbclient.New(context.Background(), &ucmdb.Config{})
		assert.ErrorIs(t, err, ucmdb.ErrEndpointRequired)
	})

	t.Run("skip TLS requires dev mode", func(t *testing.T) {
		_, err := ucmdbclient.New(context.Background(), &ucmdb.Config{
			Endpoint:      "cmdb.example.com",
			SkipTLSVerify: true,
		})
		assert.ErrorIs(t, err, ucmdb.ErrSkipTLSOnlyInDev)
	})

	t.Run("skip TLS allowed in dev mode", func(t *testing.T) {
		t.Setenv("UCMDB_DEV_MODE", "true")

		client, err := ucmdbclient.New(context.Background(), &ucmdb.Config{
			Endpoint:      "cmdb.example.com",
			SkipTLSVerify: true,
		})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{
			name:     "bare hostname",
			endpoint: "cmdb.example.com",
			want:     "https://cmdb.example.com:8443/rest-api",
		},
		{
			name:     "host with port",
			endpoint: "cmdb.example.com:443",
			want:     "https://cmdb.example.com:443/rest-api",
		},
		{
			name:     "full url",
			endpoint: "https://cmdb.example.com:8443",
			want:     "https://cmdb.example.com:8443/rest-api",
		},
		{
			name:     "trailing slash",
			endpoint: "https://cmdb.example.com:8443/",
			want:     "https://cmdb.example.com:8443/rest-api",
		},
		{
			name:     "base path already present",
			endpoint: "https://cmdb.example.com:8443/rest-api",
			want:     "https://cmdb.example.com:8443/rest-api",
		},
		{
			name:     "http scheme preserved",
			endpoint: "http://127.0.0.1:8080",
			want:     "http://127.0.0.1:8080/rest-api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ucmdbclient.NormalizeEndpoint(tt.endpoint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithEndpoint(t *testing.T) {
	client, err := ucmdbclient.NewWithEndpoint(context.Background(), "cmdb.example.com")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithToken(t *testing.T) {
	client, err := ucmdbclient.NewWithToken(context.Background(), "cmdb.example.com", "test-token")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewWithPassword(t *testing.T) {
	client, err := ucmdbclient.NewWithPassword(context.Background(), "cmdb.example.com", "sysadmin", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/rest-api/v1/uiserver/dashboard/versions/getVersion":
			_ = json.NewEncoder(writer).Encode(ucmdb.VersionInfo{
				ProductName:        "Universal Discovery and CMDB",
				ContentPackVersion: "24.2",
			})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := ucmdbclient.NewWithEndpoint(context.Background(), server.URL)
	require.NoError(t, err)

	info, err := client.System().GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Universal Discovery and CMDB", info.ProductName)
	assert.Equal(t, "24.2", info.ContentPackVersion)
}
