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

// TopologyClient implements ucmdb.TopologyClient.
type TopologyClient struct {
	httpClient *http.Client
	logger     ucmdb.Logger
}

// NewTopologyClient creates a new topology client.
func NewTopologyClient(httpClient *http.Client, logger ucmdb.Logger) *TopologyClient {
	return &TopologyClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// RunView implements ucmdb.TopologyClient.RunView. The view name is posted
// as the request body; results larger than the chunk size come back as a
// handle plus chunk count instead of inline data.
func (c *TopologyClient) RunView(ctx context.Context, view string, opts *ucmdb.RunViewOptions) (*ucmdb.TopologyResult, error) {
	includeEmpty := false
	chunkSize := constants.DefaultChunkSize

	if opts != nil {
		includeEmpty = opts.IncludeEmptyLayoutProperties

		if opts.ChunkSize > 0 {
			chunkSize = opts.ChunkSize
		}
	}

	query := url.Values{
		"includeEmptyLayoutProperties": []string{strconv.FormatBool(includeEmpty)},
		"chunkSize":                    []string{strconv.Itoa(chunkSize)},
	}

	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method: "POST",
		Path:   "/topology",
		Query:  query,
		Body:   view,
	})
	if err != nil {
		return nil, fmt.Errorf("running view: %w", err)
	}

	var result ucmdb.TopologyResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing topology response: %w", err)
	}

	return &result, nil
}

// QueryCIs implements ucmdb.TopologyClient.QueryCIs.
func (c *TopologyClient) QueryCIs(ctx context.Context, query *ucmdb.TopologyQuery) (*ucmdb.TopologyResult, error) {
	resp, err := c.httpClient.Post(ctx, "/topologyQuery", query)
	if err != nil {
		return nil, fmt.Errorf("querying CIs: %w", err)
	}

	var result ucmdb.TopologyResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing topology query response: %w", err)
	}

	return &result, nil
}

// GetChunk implements ucmdb.TopologyClient.GetChunk. Chunk indexes are
// 1-based.
func (c *TopologyClient) GetChunk(ctx context.Context, resultID string, index int) (*ucmdb.TopologyResult, error) {
	path := fmt.Sprintf("/topology/result/%s/%d", resultID, index)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting topology chunk: %w", err)
	}

	var result ucmdb.TopologyResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing topology chunk response: %w", err)
	}

	return &result, nil
}

// GetChunkForPath implements ucmdb.TopologyClient.GetChunkForPath.
func (c *TopologyClient) GetChunkForPath(ctx context.Context, req *ucmdb.ChunkForPathRequest) (*ucmdb.ViewResultChunk, error) {
	resp, err := c.httpClient.Post(ctx, "/uiserver/modeling/views/result/chunkForPath", req)
	if err != nil {
		return nil, fmt.Errorf("getting view result chunk: %w", err)
	}

	var chunk ucmdb.ViewResultChunk

	err = json.Unmarshal(resp.Body, &chunk)
	if err != nil {
		return nil, fmt.Errorf("parsing view result chunk response: %w", err)
	}

	return &chunk, nil
}

// GetAllViewResults implements ucmdb.TopologyClient.GetAllViewResults: it
// runs the view and drives the chunk protocol to completion, returning one
// combined bulk. Failures follow the aggregation policy: a failed view run
// yields an empty bulk, a failed chunk is skipped.
func (c *TopologyClient) GetAllViewResults(ctx context.Context, view string, chunkSize int) (*ucmdb.CIBulk, error) {
	first := func(ctx context.Context) (*ucmdb.ChunkPage[ucmdb.CIBulk], error) {
		result, err := c.RunView(ctx, view, &ucmdb.RunViewOptions{ChunkSize: chunkSize})
		if err != nil {
			return nil, err
		}

		return &ucmdb.ChunkPage[ucmdb.CIBulk]{
			Items:       []ucmdb.CIBulk{{CIs: result.CIs, Relations: result.Relations}},
			Handle:      result.QueryResultID,
			TotalChunks: result.NumberOfChunks,
		}, nil
	}

	chunk := func(ctx context.Context, handle string, index int) ([]ucmdb.CIBulk, error) {
		result, err := c.GetChunk(ctx, handle, index)
		if err != nil {
			return nil, err
		}

		return []ucmdb.CIBulk{{CIs: result.CIs, Relations: result.Relations}}, nil
	}

	pages, dropped := ucmdb.CollectAllStats(ctx, first, chunk)
	if dropped > 0 {
		c.logger.Warn("view aggregation dropped chunks", map[string]interface{}{
			"view":    view,
			"dropped": dropped,
		})
	}

	combined := &ucmdb.CIBulk{}
	for _, page := range pages {
		combined.CIs = append(combined.CIs, page.CIs...)
		combined.Relations = append(combined.Relations, page.Relations...)
	}

	return combined, nil
}
