package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// ReconciliationClient implements ucmdb.ReconciliationClient.
type ReconciliationClient struct {
	httpClient *http.Client
}

// NewReconciliationClient creates a new reconciliation analyzer client.
func NewReconciliationClient(httpClient *http.Client) *ReconciliationClient {
	return &ReconciliationClient{
		httpClient: httpClient,
	}
}

// FindCIs implements ucmdb.ReconciliationClient.FindCIs. Every CI whose name
// matches is returned, including merge candidates that share the name.
func (c *ReconciliationClient) FindCIs(ctx context.Context, name string) ([]ucmdb.ReconCI, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/recon-analyzer/ci", url.Values{
		"name": []string{name},
	})
	if err != nil {
		return nil, fmt.Errorf("finding CIs in reconciliation analyzer: %w", err)
	}

	var cis []ucmdb.ReconCI

	err = json.Unmarshal(resp.Body, &cis)
	if err != nil {
		return nil, fmt.Errorf("parsing reconciliation CI response: %w", err)
	}

	return cis, nil
}

// GetOperations implements ucmdb.ReconciliationClient.GetOperations.
func (c *ReconciliationClient) GetOperations(ctx context.Context, ciID string) ([]ucmdb.ReconOperation, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/recon-analyzer/operation/ci/"+url.PathEscape(ciID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting reconciliation operations: %w", err)
	}

	var operations []ucmdb.ReconOperation

	err = json.Unmarshal(resp.Body, &operations)
	if err != nil {
		return nil, fmt.Errorf("parsing reconciliation operations response: %w", err)
	}

	return operations, nil
}

// GetMatchReason implements ucmdb.ReconciliationClient.GetMatchReason.
func (c *ReconciliationClient) GetMatchReason(ctx context.Context, operationID, ciID string) (*ucmdb.ReconMatchReason, error) {
	resp, err := c.httpClient.Get(ctx, "/v1/recon-analyzer/reconDetails/"+url.PathEscape(operationID)+"/"+url.PathEscape(ciID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting reconciliation match reason: %w", err)
	}

	var reason ucmdb.ReconMatchReason

	err = json.Unmarshal(resp.Body, &reason)
	if err != nil {
		return nil, fmt.Errorf("parsing reconciliation match reason response: %w", err)
	}

	return &reason, nil
}
