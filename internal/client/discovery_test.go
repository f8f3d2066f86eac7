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

func TestDiscoveryClient_ListJobGroups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discovery/discoveryprofiles", r.URL.Path)
		assert.Equal(t, "name,oob", r.URL.Query().Get("fields"))

		_ = json.NewEncoder(w).Encode(ucmdb.DiscoveryJobGroupList{
			Items: []ucmdb.DiscoveryJobGroup{
				{Name: "Inventory_Group", OOB: false},
				{Name: "Network_Group", OOB: true},
			},
		})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	list, err := client.Discovery().ListJobGroups(context.Background(), []string{"name", "oob"})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Inventory_Group", list.Items[0].Name)
}

func TestDiscoveryClient_GetJobGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discovery/discoveryprofiles/Inventory_Group", r.URL.Path)

		_ = json.NewEncoder(w).Encode(ucmdb.DiscoveryJobGroup{
			Name: "Inventory_Group",
			Jobs: []ucmdb.DiscoveryJob{{JobName: "Host Connection by Shell"}},
		})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	group, err := client.Discovery().GetJobGroup(context.Background(), "Inventory_Group")
	require.NoError(t, err)
	require.Len(t, group.Jobs, 1)
	assert.Equal(t, "Host Connection by Shell", group.Jobs[0].JobName)
}

func TestDiscoveryClient_CreateJobGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discovery/discoveryprofiles", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var group ucmdb.DiscoveryJobGroup
		_ = json.NewDecoder(r.Body).Decode(&group)
		assert.Equal(t, "Inventory_Group", group.Name)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	err = client.Discovery().CreateJobGroup(context.Background(), &ucmdb.DiscoveryJobGroup{
		Name:        "Inventory_Group",
		Description: "Custom inventory jobs",
		Jobs:        []ucmdb.DiscoveryJob{{JobName: "Host Connection by Shell"}},
	})
	require.NoError(t, err)
}

func TestDiscoveryClient_DeleteJobGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discovery/discoveryprofiles/Inventory_Group", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	err = client.Discovery().DeleteJobGroup(context.Background(), "Inventory_Group")
	require.NoError(t, err)
}

func TestDiscoveryClient_CreateProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/uiserver/dashboard/versions/getVersion":
			_ = json.NewEncoder(w).Encode(ucmdb.VersionInfo{ContentPackVersion: "24.2"})
		case "/discovery/discoveryprofiles":
			assert.Equal(t, "POST", r.Method)

			var profile ucmdb.DiscoveryProfile
			_ = json.NewDecoder(r.Body).Decode(&profile)
			assert.Equal(t, "Datacenter Profile", profile.Name)
			require.Len(t, profile.JobGroups, 2)
			assert.Equal(t, "Inventory Jobs", profile.JobGroups[0].Name)

			w.WriteHeader(http.StatusCreated)
		}
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	err = client.Discovery().CreateProfile(context.Background(), &ucmdb.DiscoveryProfile{
		Name: "Datacenter Profile",
		JobGroups: []ucmdb.JobGroupRef{
			{Name: "Inventory Jobs"},
			{Name: "Network Discovery"},
		},
	})
	require.NoError(t, err)
}

func TestDiscoveryClient_CreateProfile_VersionTooLow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/uiserver/dashboard/versions/getVersion":
			_ = json.NewEncoder(w).Encode(ucmdb.VersionInfo{ContentPackVersion: "23.1"})
		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	err = client.Discovery().CreateProfile(context.Background(), &ucmdb.DiscoveryProfile{Name: "p"})
	require.Error(t, err)
	assert.True(t, ucmdb.IsVersionError(err))
}

func TestDiscoveryClient_DeleteProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/uiserver/dashboard/versions/getVersion":
			_ = json.NewEncoder(w).Encode(ucmdb.VersionInfo{ContentPackVersion: "23.4"})
		case "/discovery/discoveryprofiles/Datacenter%20Profile", "/discovery/discoveryprofiles/Datacenter Profile":
			assert.Equal(t, "DELETE", r.Method)
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	err = client.Discovery().DeleteProfile(context.Background(), "Datacenter Profile")
	require.NoError(t, err)
}
