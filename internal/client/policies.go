package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kwpaschal/ucmdb-rest/internal/constants"
	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// nonCompliantPath addresses the NON-COMPLIANT branch of a calculated view
// result tree.
var nonCompliantPath = []ucmdb.PathElement{
	{PathElementID: "NON-COMPLIANT", PathElementType: "NON-COMPLIANT"},
}

// PoliciesClient implements ucmdb.PoliciesClient.
type PoliciesClient struct {
	httpClient *http.Client
	logger     ucmdb.Logger
}

// NewPoliciesClient creates a new policies client.
func NewPoliciesClient(httpClient *http.Client, logger ucmdb.Logger) *PoliciesClient {
	return &PoliciesClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// GetPolicies implements ucmdb.PoliciesClient.GetPolicies.
func (c *PoliciesClient) GetPolicies(ctx context.Context) ([]ucmdb.Policy, error) {
	resp, err := c.httpClient.Get(ctx, "/policy/policies", nil)
	if err != nil {
		return nil, fmt.Errorf("getting policies: %w", err)
	}

	var policies []ucmdb.Policy

	err = json.Unmarshal(resp.Body, &policies)
	if err != nil {
		return nil, fmt.Errorf("parsing policies response: %w", err)
	}

	return policies, nil
}

// GetComplianceViews implements ucmdb.PoliciesClient.GetComplianceViews.
func (c *PoliciesClient) GetComplianceViews(ctx context.Context) ([]ucmdb.ComplianceView, error) {
	resp, err := c.httpClient.Get(ctx, "/policy/complianceViews", nil)
	if err != nil {
		return nil, fmt.Errorf("getting compliance views: %w", err)
	}

	var views []ucmdb.ComplianceView

	err = json.Unmarshal(resp.Body, &views)
	if err != nil {
		return nil, fmt.Errorf("parsing compliance views response: %w", err)
	}

	return views, nil
}

// GetComplianceView implements ucmdb.PoliciesClient.GetComplianceView.
func (c *PoliciesClient) GetComplianceView(ctx context.Context, name string) (*ucmdb.ComplianceView, error) {
	resp, err := c.httpClient.Get(ctx, "/policy/complianceView/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, fmt.Errorf("getting compliance view: %w", err)
	}

	var view ucmdb.ComplianceView

	err = json.Unmarshal(resp.Body, &view)
	if err != nil {
		return nil, fmt.Errorf("parsing compliance view response: %w", err)
	}

	return &view, nil
}

// CalculateView implements ucmdb.PoliciesClient.CalculateView: it runs the
// compliance calculation for one view and returns the execution handle plus
// the per-status CI counts.
func (c *PoliciesClient) CalculateView(ctx context.Context, view string) (*ucmdb.ViewExecution, error) {
	resp, err := c.httpClient.Post(ctx, "/uiserver/modeling/views/"+url.PathEscape(view), struct{}{})
	if err != nil {
		return nil, fmt.Errorf("calculating view: %w", err)
	}

	var execution ucmdb.ViewExecution

	err = json.Unmarshal(resp.Body, &execution)
	if err != nil {
		return nil, fmt.Errorf("parsing view calculation response: %w", err)
	}

	return &execution, nil
}

// CalculateCompliance implements ucmdb.PoliciesClient.CalculateCompliance.
// The chunckSize parameter name reproduces the server's own spelling.
func (c *PoliciesClient) CalculateCompliance(ctx context.Context, body interface{}) (*ucmdb.ViewExecution, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   "/policy/calculate",
		Query:  url.Values{"chunckSize": []string{strconv.Itoa(constants.ComplianceChunkSize)}},
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("calculating compliance: %w", err)
	}

	var execution ucmdb.ViewExecution

	err = json.Unmarshal(resp.Body, &execution)
	if err != nil {
		return nil, fmt.Errorf("parsing compliance calculation response: %w", err)
	}

	return &execution, nil
}

// GetNonCompliantChunk implements ucmdb.PoliciesClient.GetNonCompliantChunk.
// Chunk indexes are 1-based.
func (c *PoliciesClient) GetNonCompliantChunk(ctx context.Context, executionID string, chunk int) (*ucmdb.ViewResultChunk, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   "/policy/chunkForPath",
		Query:  url.Values{"chunkSize": []string{strconv.Itoa(constants.ComplianceChunkSize)}},
		Body: &ucmdb.ChunkForPathRequest{
			ViewExecutionID: executionID,
			Path:            nonCompliantPath,
			ChunkNumber:     chunk,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("getting non-compliant chunk: %w", err)
	}

	var result ucmdb.ViewResultChunk

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing non-compliant chunk response: %w", err)
	}

	return &result, nil
}

// GetNumberOfElements implements ucmdb.PoliciesClient.GetNumberOfElements.
func (c *PoliciesClient) GetNumberOfElements(ctx context.Context, req *ucmdb.ElementCountRequest) (int, error) {
	resp, err := c.httpClient.Post(ctx, "/uiserver/modeling/views/result/numberOfElementsForPath", req)
	if err != nil {
		return 0, fmt.Errorf("getting element count: %w", err)
	}

	// The endpoint answers with a bare number.
	var count int

	err = json.Unmarshal(resp.Body, &count)
	if err != nil {
		return 0, fmt.Errorf("parsing element count response: %w", err)
	}

	return count, nil
}

// GetAllNonCompliant implements ucmdb.PoliciesClient.GetAllNonCompliant: it
// calculates the view and collects every non-compliant CI across all result
// chunks. Failures follow the aggregation policy: a failed calculation
// yields an empty slice, a failed chunk is skipped.
func (c *PoliciesClient) GetAllNonCompliant(ctx context.Context, view string) ([]ucmdb.CI, error) {
	first := func(ctx context.Context) (*ucmdb.ChunkPage[ucmdb.CI], error) {
		execution, err := c.CalculateView(ctx, view)
		if err != nil {
			return nil, err
		}

		return &ucmdb.ChunkPage[ucmdb.CI]{
			Handle:      execution.ViewExecutionID,
			TotalChunks: execution.NumberOfChunks,
		}, nil
	}

	chunk := func(ctx context.Context, handle string, index int) ([]ucmdb.CI, error) {
		result, err := c.GetNonCompliantChunk(ctx, handle, index)
		if err != nil {
			return nil, err
		}

		return result.CIs, nil
	}

	items, dropped := ucmdb.CollectAllStats(ctx, first, chunk)
	if dropped > 0 {
		c.logger.Warn("compliance aggregation dropped chunks", map[string]interface{}{
			"view":    view,
			"dropped": dropped,
		})
	}

	return items, nil
}
