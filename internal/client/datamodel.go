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

// DataModelClient implements ucmdb.DataModelClient.
type DataModelClient struct {
	httpClient *http.Client
}

// NewDataModelClient creates a new data model client.
func NewDataModelClient(httpClient *http.Client) *DataModelClient {
	return &DataModelClient{
		httpClient: httpClient,
	}
}

// AddCIs implements ucmdb.DataModelClient.AddCIs. All reconciliation flags
// are sent explicitly, matching the server's expectation of lowercase
// boolean query parameters.
func (c *DataModelClient) AddCIs(ctx context.Context, bulk *ucmdb.CIBulk, opts *ucmdb.AddCIsOptions) (*ucmdb.AddCIsResult, error) {
	if opts == nil {
		opts = &ucmdb.AddCIsOptions{}
	}

	query := url.Values{
		"isGlobalId":             []string{strconv.FormatBool(opts.IsGlobalID)},
		"forceTemporaryId":       []string{strconv.FormatBool(opts.ForceTemporaryID)},
		"ignoreExisting":         []string{strconv.FormatBool(opts.IgnoreExisting)},
		"returnIdsMap":           []string{strconv.FormatBool(opts.ReturnIDsMap)},
		"ignoreWhenCantIdentify": []string{strconv.FormatBool(opts.IgnoreWhenCantIdentify)},
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   "/dataModel",
		Query:  query,
		Body:   bulk,
	})
	if err != nil {
		return nil, fmt.Errorf("adding CIs: %w", err)
	}

	var result ucmdb.AddCIsResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing add CIs response: %w", err)
	}

	return &result, nil
}

// GetCI implements ucmdb.DataModelClient.GetCI.
func (c *DataModelClient) GetCI(ctx context.Context, id string) (*ucmdb.CI, error) {
	resp, err := c.httpClient.Get(ctx, "/dataModel/ci/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("getting CI: %w", err)
	}

	var configItem ucmdb.CI

	err = json.Unmarshal(resp.Body, &configItem)
	if err != nil {
		return nil, fmt.Errorf("parsing CI response: %w", err)
	}

	return &configItem, nil
}

// UpdateCI implements ucmdb.DataModelClient.UpdateCI.
func (c *DataModelClient) UpdateCI(ctx context.Context, id string, update *ucmdb.CI) (*ucmdb.CI, error) {
	resp, err := c.httpClient.Put(ctx, "/dataModel/ci/"+id, update)
	if err != nil {
		return nil, fmt.Errorf("updating CI: %w", err)
	}

	var configItem ucmdb.CI

	err = json.Unmarshal(resp.Body, &configItem)
	if err != nil {
		return nil, fmt.Errorf("parsing CI response: %w", err)
	}

	return &configItem, nil
}

// DeleteCI implements ucmdb.DataModelClient.DeleteCI.
func (c *DataModelClient) DeleteCI(ctx context.Context, id string, isGlobalID bool) error {
	_, err := c.httpClient.DeleteWithQuery(ctx, "/dataModel/ci/"+id, url.Values{
		"isGlobalId": []string{strconv.FormatBool(isGlobalID)},
	})
	if err != nil {
		return fmt.Errorf("deleting CI: %w", err)
	}

	return nil
}

// GetClass implements ucmdb.DataModelClient.GetClass.
func (c *DataModelClient) GetClass(ctx context.Context, ciType string) (*ucmdb.ClassDefinition, error) {
	resp, err := c.httpClient.Get(ctx, "/classModel/citypes/"+ciType, nil)
	if err != nil {
		return nil, fmt.Errorf("getting class definition: %w", err)
	}

	var class ucmdb.ClassDefinition

	err = json.Unmarshal(resp.Body, &class)
	if err != nil {
		return nil, fmt.Errorf("parsing class definition response: %w", err)
	}

	return &class, nil
}

// GetIdentificationRule implements
// ucmdb.DataModelClient.GetIdentificationRule. The same class model endpoint
// answers, with affected-resource expansion disabled.
func (c *DataModelClient) GetIdentificationRule(ctx context.Context, ciType string) (*ucmdb.ClassDefinition, error) {
	resp, err := c.httpClient.Get(ctx, "/classModel/citypes/"+ciType, url.Values{
		"withAffectedResources": []string{"false"},
	})
	if err != nil {
		return nil, fmt.Errorf("getting identification rule: %w", err)
	}

	var class ucmdb.ClassDefinition

	err = json.Unmarshal(resp.Body, &class)
	if err != nil {
		return nil, fmt.Errorf("parsing identification rule response: %w", err)
	}

	return &class, nil
}

// ExposeCIs implements ucmdb.DataModelClient.ExposeCIs.
func (c *DataModelClient) ExposeCIs(ctx context.Context, query *ucmdb.ExposeQuery) ([]ucmdb.ExposedCI, error) {
	resp, err := c.httpClient.Post(ctx, "/exposeCI/getInformation", query)
	if err != nil {
		return nil, fmt.Errorf("exposing CIs: %w", err)
	}

	var cis []ucmdb.ExposedCI

	err = json.Unmarshal(resp.Body, &cis)
	if err != nil {
		return nil, fmt.Errorf("parsing exposed CIs response: %w", err)
	}

	return cis, nil
}

// FindCIsByLabel implements ucmdb.DataModelClient.FindCIsByLabel: an expose
// query over nodes filtered on display_label. An empty operator defaults to
// Like.
func (c *DataModelClient) FindCIsByLabel(ctx context.Context, labelPattern, operator string) ([]ucmdb.ExposedCI, error) {
	if operator == "" {
		operator = "Like"
	}

	return c.ExposeCIs(ctx, &ucmdb.ExposeQuery{
		Type:            "node",
		Layout:          []string{"display_label", "name", "global_id"},
		IncludeSubtypes: true,
		Filtering: &ucmdb.ExposeFilter{
			LogicalOperator: "and",
			Conditions: []ucmdb.ExposeCondition{
				{
					Column:   "display_label",
					Value:    labelPattern,
					Operator: operator,
				},
			},
		},
	})
}
