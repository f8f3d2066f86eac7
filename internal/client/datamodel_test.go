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

func TestDataModelClient_AddCIs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dataModel", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "false", r.URL.Query().Get("isGlobalId"))
		assert.Equal(t, "true", r.URL.Query().Get("forceTemporaryId"))
		assert.Equal(t, "true", r.URL.Query().Get("returnIdsMap"))

		var bulk ucmdb.CIBulk
		_ = json.NewDecoder(r.Body).Decode(&bulk)
		assert.Len(t, bulk.CIs, 1)
		assert.Equal(t, "node", bulk.CIs[0].Type)

		_ = json.NewEncoder(w).Encode(ucmdb.AddCIsResult{
			IDsMap: map[string]string{"temp-1": "4c08d336b05421a1ae48c067951f9248"},
			Added:  []string{"4c08d336b05421a1ae48c067951f9248"},
		})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	result, err := client.DataModel().AddCIs(context.Background(), &ucmdb.CIBulk{
		CIs: []ucmdb.CI{{
			UCMDBID:    "temp-1",
			Type:       "node",
			Properties: map[string]interface{}{"name": "myhost"},
		}},
	}, &ucmdb.AddCIsOptions{ForceTemporaryID: true, ReturnIDsMap: true})
	require.NoError(t, err)
	assert.Equal(t, "4c08d336b05421a1ae48c067951f9248", result.IDsMap["temp-1"])
	assert.Len(t, result.Added, 1)
}

func TestDataModelClient_GetCI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dataModel/ci/ci-1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_ = json.NewEncoder(w).Encode(ucmdb.CI{UCMDBID: "ci-1", Type: "node", Label: "myhost"})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	configItem, err := client.DataModel().GetCI(context.Background(), "ci-1")
	require.NoError(t, err)
	assert.Equal(t, "ci-1", configItem.UCMDBID)
	assert.Equal(t, "myhost", configItem.Label)
}

func TestDataModelClient_UpdateCI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dataModel/ci/ci-1", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var update ucmdb.CI
		_ = json.NewDecoder(r.Body).Decode(&update)
		_ = json.NewEncoder(w).Encode(update)
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	updated, err := client.DataModel().UpdateCI(context.Background(), "ci-1", &ucmdb.CI{
		UCMDBID:    "ci-1",
		Type:       "node",
		Properties: map[string]interface{}{"description": "updated"},
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Properties["description"])
}

func TestDataModelClient_DeleteCI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/dataModel/ci/ci-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "true", r.URL.Query().Get("isGlobalId"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	err = client.DataModel().DeleteCI(context.Background(), "ci-1", true)
	require.NoError(t, err)
}

func TestDataModelClient_GetClass(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classModel/citypes/node", r.URL.Path)

		_ = json.NewEncoder(w).Encode(ucmdb.ClassDefinition{
			Name:        "node",
			DisplayName: "Node",
			Parent:      "infrastructure_element",
		})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	class, err := client.DataModel().GetClass(context.Background(), "node")
	require.NoError(t, err)
	assert.Equal(t, "node", class.Name)
	assert.Equal(t, "infrastructure_element", class.Parent)
}

func TestDataModelClient_GetIdentificationRule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classModel/citypes/node", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("withAffectedResources"))

		_ = json.NewEncoder(w).Encode(ucmdb.ClassDefinition{Name: "node"})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	class, err := client.DataModel().GetIdentificationRule(context.Background(), "node")
	require.NoError(t, err)
	assert.Equal(t, "node", class.Name)
}

func TestDataModelClient_GetCI_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(ucmdb.ResponseError{Message: "CI not found"})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.DataModel().GetCI(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, ucmdb.IsNotFound(err))
}

func TestDataModelClient_ExposeCIs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/exposeCI/getInformation", r.URL.Path)

		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "running_software", body["type"])
		assert.Equal(t, "false", body["includeSubtypes"])

		_ = json.NewEncoder(w).Encode([]ucmdb.ExposedCI{
			{
				UCMDBID: "4e8b850822c83fdb975dc2bf899c7686",
				Type:    "running_software",
				Properties: map[string]interface{}{
					"discovered_product_name": "OpenText UCMDB Server",
					"version":                 "10.22.CUP3",
				},
			},
		})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	cis, err := client.DataModel().ExposeCIs(context.Background(), &ucmdb.ExposeQuery{
		Type:   "running_software",
		Layout: []string{"display_label", "discovered_product_name", "version"},
		SortBy: []ucmdb.ExposeSort{
			{Attribute: "version", Order: "DESC"},
		},
	})
	require.NoError(t, err)
	require.Len(t, cis, 1)
	assert.Equal(t, "OpenText UCMDB Server", cis[0].Properties["discovered_product_name"])
}

func TestDataModelClient_FindCIsByLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var query ucmdb.ExposeQuery
		_ = json.NewDecoder(r.Body).Decode(&query)
		assert.Equal(t, "node", query.Type)
		assert.True(t, query.IncludeSubtypes)
		require.NotNil(t, query.Filtering)
		require.Len(t, query.Filtering.Conditions, 1)
		assert.Equal(t, "display_label", query.Filtering.Conditions[0].Column)
		assert.Equal(t, "web%", query.Filtering.Conditions[0].Value)
		assert.Equal(t, "Like", query.Filtering.Conditions[0].Operator)

		_ = json.NewEncoder(w).Encode([]ucmdb.ExposedCI{
			{UCMDBID: "4c5c605b7af89deab868c04bebceed3a", DisplayLabel: "web01"},
		})
	}))
	defer server.Close()

	client, err := New(context.Background(), &ucmdb.Config{Endpoint: server.URL})
	require.NoError(t, err)

	cis, err := client.DataModel().FindCIsByLabel(context.Background(), "web%", "")
	require.NoError(t, err)
	require.Len(t, cis, 1)
	assert.Equal(t, "web01", cis[0].DisplayLabel)
}
