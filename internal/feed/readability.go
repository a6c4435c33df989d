package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"
)

// Enricher replaces an item's feed excerpt with the readable text of the
// linked page. It is strictly best-effort: any failure leaves the item as-is.
type Enricher struct {
	client *http.Client
}

// NewEnricher creates an enricher with the given per-fetch timeout.
func NewEnricher(timeout time.Duration) *Enricher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Enricher{client: &http.Client{Timeout: timeout}}
}

// Extract fetches link and returns its main article text, sanitized and
// capped the same way feed content is.
func (e *Enricher) Extract(ctx context.Context, link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, "GET", link, nil)
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch status %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, u)
	if err != nil {
		return "", fmt.Errorf("readability: %w", err)
	}
	return capContent(CleanText(article.TextContent)), nil
}
