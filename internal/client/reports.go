package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kwpaschal/ucmdb-rest/internal/constants"
	"github.com/kwpaschal/ucmdb-rest/internal/http"
	"github.com/kwpaschal/ucmdb-rest/pkg/ucmdb"
)

// ReportsClient implements ucmdb.ReportsClient.
type ReportsClient struct {
	httpClient *http.Client
}

// NewReportsClient creates a new reports client.
func NewReportsClient(httpClient *http.Client) *ReportsClient {
	return &ReportsClient{
		httpClient: httpClient,
	}
}

// GetViewChangeReport implements ucmdb.ReportsClient.GetViewChangeReport.
// The payload shape varies between releases, so the result stays untyped.
func (c *ReportsClient) GetViewChangeReport(ctx context.Context, req *ucmdb.ChangeReportRequest) (map[string]interface{}, error) {
	filter := "type=ALL"
	if len(req.Attributes) > 0 {
		filter += "&attributes=" + strings.Join(req.Attributes, ",")
	}

	resp, err := c.httpClient.Get(ctx, "/report/change/view/"+url.PathEscape(req.ViewName)+"/results", url.Values{
		"filter":   []string{filter},
		"dateFrom": []string{strconv.FormatInt(req.DateFrom, 10)},
		"dateTo":   []string{strconv.FormatInt(req.DateTo, 10)},
		"start":    []string{"1"},
		"pageSize": []string{strconv.Itoa(constants.ChangeReportPageSize)},
	})
	if err != nil {
		return nil, fmt.Errorf("getting view change report: %w", err)
	}

	var report map[string]interface{}

	err = json.Unmarshal(resp.Body, &report)
	if err != nil {
		return nil, fmt.Errorf("parsing view change report response: %w", err)
	}

	return report, nil
}

// GenerateBlacklistReport implements
// ucmdb.ReportsClient.GenerateBlacklistReport.
func (c *ReportsClient) GenerateBlacklistReport(ctx context.Context, req *ucmdb.ChangeReportRequest) (*ucmdb.ChangeReport, error) {
	resp, err := c.httpClient.Post(ctx, "/changeReports/generate/blacklist", req)
	if err != nil {
		return nil, fmt.Errorf("generating blacklist report: %w", err)
	}

	var report ucmdb.ChangeReport

	err = json.Unmarshal(resp.Body, &report)
	if err != nil {
		return nil, fmt.Errorf("parsing blacklist report response: %w", err)
	}

	return &report, nil
}

// GenerateWhitelistReport implements
// ucmdb.ReportsClient.GenerateWhitelistReport. The server answers 400 when
// the view has no whitelist changes in the window; that maps to an empty
// report rather than an error.
func (c *ReportsClient) GenerateWhitelistReport(ctx context.Context, req *ucmdb.ChangeReportRequest) (*ucmdb.ChangeReport, error) {
	resp, err := c.httpClient.Post(ctx, "/changeReports/generate/whitelist", req)
	if err != nil {
		var respErr *ucmdb.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == nethttp.StatusBadRequest {
			return &ucmdb.ChangeReport{}, nil
		}

		return nil, fmt.Errorf("generating whitelist report: %w", err)
	}

	var report ucmdb.ChangeReport

	err = json.Unmarshal(resp.Body, &report)
	if err != nil {
		return nil, fmt.Errorf("parsing whitelist report response: %w", err)
	}

	return &report, nil
}
