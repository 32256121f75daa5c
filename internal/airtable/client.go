package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.airtable.com/v0"

type Client struct {
	baseURL    string
	baseID     string
	token      string
	httpClient *http.Client

	maxRetries int
	retryDelay time.Duration
}

func NewClient(baseID, token string) (*Client, error) {
	if token == "" {
		return nil, errors.New("airtable: API token is required")
	}
	if baseID == "" {
		return nil, errors.New("airtable: base ID is required")
	}
	return &Client{
		baseURL:    defaultBaseURL,
		baseID:     baseID,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		maxRetries: 3,
		retryDelay: time.Second,
	}, nil
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.baseID, url.PathEscape(table))
}

// List fetches records from a table, following pagination offsets until the
// store is exhausted or MaxRecords is reached.
func (c *Client) List(ctx context.Context, table string, opts ListOptions) ([]Record, error) {
	var records []Record
	offset := ""

	for {
		q := url.Values{}
		if opts.FilterByFormula != "" {
			q.Set("filterByFormula", opts.FilterByFormula)
		}
		if opts.MaxRecords > 0 {
			q.Set("maxRecords", strconv.Itoa(opts.MaxRecords))
		}
		if opts.View != "" {
			q.Set("view", opts.View)
		}
		for i, s := range opts.Sort {
			q.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
			q.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
		}
		if offset != "" {
			q.Set("offset", offset)
		}

		body, status, err := c.doGet(ctx, c.tableURL(table)+"?"+q.Encode())
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, apiError(table, status, body)
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decoding %s response: %w", table, err)
		}
		records = append(records, page.Records...)

		if page.Offset == "" {
			break
		}
		if opts.MaxRecords > 0 && len(records) >= opts.MaxRecords {
			records = records[:opts.MaxRecords]
			break
		}
		offset = page.Offset
	}

	return records, nil
}

// Find fetches a single record by ID. A 404 from the store yields (nil, nil)
// so callers can render a not-found state instead of an error.
func (c *Client) Find(ctx context.Context, table, id string) (*Record, error) {
	body, status, err := c.doGet(ctx, c.tableURL(table)+"/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, apiError(table, status, body)
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", table, err)
	}
	return &rec, nil
}

// doGet issues an authenticated GET with bounded retries. Transport errors,
// 429 and 5xx responses are retried with exponential backoff; other statuses
// are returned to the caller as-is.
func (c *Client) doGet(ctx context.Context, rawURL string) ([]byte, int, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<uint(attempt-1))
			if delay > 30*time.Second {
				delay = 30 * time.Second
			}
			select {
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("reading response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, snippet(body))
			continue
		}

		return body, resp.StatusCode, nil
	}

	return nil, 0, lastErr
}

func apiError(table string, status int, body []byte) error {
	var payload struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return fmt.Errorf("%s: %s (%s)", table, payload.Error.Message, payload.Error.Type)
	}
	return fmt.Errorf("%s: status %d: %s", table, status, snippet(body))
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
