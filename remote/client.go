package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is the narrow CRUD surface over the hosted row-oriented backend.
// Tables are addressed by name; filters use the column=eq.value form and
// every request carries the authenticated API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a client for the remote REST endpoint.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Select fetches rows matching the query into dest.
func (c *Client) Select(ctx context.Context, table string, query url.Values, dest interface{}) error {
	return c.do(ctx, http.MethodGet, table, query, nil, "", dest)
}

// Insert creates a new row.
func (c *Client) Insert(ctx context.Context, table string, body interface{}) error {
	return c.do(ctx, http.MethodPost, table, nil, body, "", nil)
}

// Upsert inserts the row or updates it in place when the key exists.
func (c *Client) Upsert(ctx context.Context, table string, body interface{}) error {
	return c.do(ctx, http.MethodPost, table, nil, body, "resolution=merge-duplicates", nil)
}

// Update patches all rows matching the query.
func (c *Client) Update(ctx context.Context, table string, query url.Values, body interface{}) error {
	return c.do(ctx, http.MethodPatch, table, query, body, "", nil)
}

// Delete removes all rows matching the query.
func (c *Client) Delete(ctx context.Context, table string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, table, query, nil, "", nil)
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, body interface{}, prefer string, dest interface{}) error {
	endpoint := c.baseURL + "/" + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error encoding %s payload: %w", table, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error calling remote %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("remote unauthorized (401) - check your API key")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("remote %s error: %s - %s", table, resp.Status, msg)
	}

	if dest == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("error parsing %s response: %w", table, err)
	}
	return nil
}
