package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fikanova/portfolio/internal/config"
)

// Client issues read-only GROQ queries against the Sanity HTTP API. The
// application is a pure consumer; it never writes.
type Client struct {
	httpClient *http.Client
	queryURL   string
	token      string
	projectID  string
	dataset    string
}

// NewClient builds a client from configuration. baseURL can be overridden
// for tests via WithBaseURL.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.SanityTimeout},
		queryURL: fmt.Sprintf("https://%s.api.sanity.io/v%s/data/query/%s",
			cfg.SanityProjectID, cfg.SanityAPIVersion, cfg.SanityDataset),
		token:     cfg.SanityToken,
		projectID: cfg.SanityProjectID,
		dataset:   cfg.SanityDataset,
	}
}

// WithBaseURL replaces the query endpoint, keeping everything else. Tests
// point it at an httptest server.
func (c *Client) WithBaseURL(base string) *Client {
	clone := *c
	clone.queryURL = base
	return &clone
}

// apiEnvelope is the Sanity query response wrapper.
type apiEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *apiError       `json:"error"`
}

type apiError struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Query runs a GROQ query and decodes the result into out. Parameters are
// passed as $-prefixed JSON-encoded query values, matching the API's
// parameterized-query contract. A null result leaves out untouched, so
// callers can distinguish "absent" by checking their zero value.
func (c *Client) Query(ctx context.Context, groq string, params map[string]string, out any) error {
	values := url.Values{}
	values.Set("query", groq)
	for name, val := range params {
		encoded, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("encode query param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL+"?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create content query request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content store request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read content store response: %w", err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode content store response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if envelope.Error != nil {
			return fmt.Errorf("content store error (status %d): %s", resp.StatusCode, envelope.Error.Description)
		}
		return fmt.Errorf("content store error: status %d", resp.StatusCode)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode query result: %w", err)
	}
	return nil
}

// Healthy reports whether the content store answers a trivial query within
// the timeout. Used by the CLI content check.
func (c *Client) Healthy(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	var count int
	return c.Query(ctx, `count(*[_type == "project"])`, nil, &count)
}
