// Package fakestore fetches the product catalog from a Fake Store style
// REST endpoint and carries the built-in fallback list used when the
// endpoint is unreachable.
package fakestore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"modernshop-backend/internal/domain"

	"github.com/goccy/go-json"
)

// Client fetches the product list over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchProducts performs a single GET of the catalog endpoint. Non-2xx
// responses and decode failures are returned as errors; the caller
// decides whether to substitute the fallback list.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("catalog fetch: unexpected status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}
	return products, nil
}
