package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"edudesk/domain/table"
	"edudesk/internal/errors"
	"edudesk/ports"
)

// Client talks to the learning platform's REST backend. Every endpoint
// answers with a {success, data, pagination?} envelope; nothing beyond the
// success flag is interpreted here.
type Client struct {
	baseURL    string
	httpClient *http.Client
	// maxPages caps FetchAll's page loop against a misbehaving backend.
	maxPages int
}

// NewClient creates a backend client. timeout applies per request.
func NewClient(baseURL string, timeout time.Duration, maxPages int) *Client {
	if maxPages < 1 {
		maxPages = 100
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxPages: maxPages,
	}
}

var _ ports.BackendPort = (*Client)(nil)

// List reads one page of a resource collection.
func (c *Client) List(ctx context.Context, resource string, query ports.ListQuery) (*ports.ListResult, error) {
	body, err := c.get(ctx, resource, listParams(query))
	if err != nil {
		return nil, errors.BackendError(resource, err)
	}

	result := &ports.ListResult{
		Records: parseRecords(gjson.GetBytes(body, "data")),
	}
	if page := gjson.GetBytes(body, "pagination"); page.Exists() {
		result.Pagination = &ports.Pagination{
			Page:       int(page.Get("page").Int()),
			PageSize:   int(page.Get("page_size").Int()),
			TotalPages: int(page.Get("total_pages").Int()),
			TotalItems: int(page.Get("total_items").Int()),
		}
	}
	return result, nil
}

// FetchAll walks the page loop until the backend reports no further pages.
// Exports operate on this unpaginated set.
func (c *Client) FetchAll(ctx context.Context, resource string, params map[string]string) ([]table.Record, error) {
	var all []table.Record
	for page := 1; page <= c.maxPages; page++ {
		result, err := c.List(ctx, resource, ports.ListQuery{
			Page:     page,
			PageSize: 200,
			Params:   params,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, result.Records...)

		if result.Pagination == nil || page >= result.Pagination.TotalPages {
			break
		}
	}
	return all, nil
}

// Create issues one create call for a record.
func (c *Client) Create(ctx context.Context, resource string, record table.Record) error {
	return c.send(ctx, http.MethodPost, c.endpoint(resource), record)
}

// Update modifies one record by id.
func (c *Client) Update(ctx context.Context, resource, id string, record table.Record) error {
	return c.send(ctx, http.MethodPut, c.endpoint(resource)+"/"+url.PathEscape(id), record)
}

// Delete removes one record by id.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.send(ctx, http.MethodDelete, c.endpoint(resource)+"/"+url.PathEscape(id), nil)
}

func (c *Client) endpoint(resource string) string {
	return c.baseURL + "/" + resource
}

func (c *Client) get(ctx context.Context, resource string, params url.Values) ([]byte, error) {
	endpoint := c.endpoint(resource)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	if !gjson.GetBytes(body, "success").Bool() {
		return nil, fmt.Errorf("backend reported failure: %s", gjson.GetBytes(body, "message").String())
	}
	return body, nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, record table.Record) error {
	var payload io.Reader
	if record != nil {
		encoded, err := json.Marshal(record)
		if err != nil {
			return errors.Wrap(err, "could not encode record")
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.BackendError(endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.BackendError(endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.BackendError(endpoint, fmt.Errorf("status %d", resp.StatusCode))
	}
	if success := gjson.GetBytes(body, "success"); success.Exists() && !success.Bool() {
		return errors.BackendError(endpoint, fmt.Errorf("%s", gjson.GetBytes(body, "message").String()))
	}
	return nil
}

func listParams(query ports.ListQuery) url.Values {
	params := url.Values{}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(query.PageSize))
	}
	for key, value := range query.Params {
		if value != "" {
			params.Set(key, value)
		}
	}
	return params
}

func parseRecords(data gjson.Result) []table.Record {
	var records []table.Record
	data.ForEach(func(_, item gjson.Result) bool {
		if record, ok := item.Value().(map[string]interface{}); ok {
			records = append(records, record)
		}
		return true
	})
	return records
}
