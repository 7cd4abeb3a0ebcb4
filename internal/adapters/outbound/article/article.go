package article

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/abdidvp/credence/internal/domain"
)

const fetchTimeout = 30 * time.Second

// Fetcher implements domain.ArticleFetcher with go-readability.
type Fetcher struct {
	client *http.Client
}

func New() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: fetchTimeout}}
}

var _ domain.ArticleFetcher = (*Fetcher)(nil)

// Fetch downloads rawURL and extracts the article title and body text.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.Article, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil || pageURL.Scheme == "" || pageURL.Host == "" {
		return nil, fmt.Errorf("invalid article url %q", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", rawURL, res.StatusCode)
	}

	parsed, err := readability.FromReader(res.Body, pageURL)
	if err != nil {
		return nil, fmt.Errorf("extracting article: %w", err)
	}

	text := strings.TrimSpace(parsed.TextContent)
	if text == "" {
		return nil, fmt.Errorf("no readable content at %s", rawURL)
	}

	return &domain.Article{
		Title:   strings.TrimSpace(parsed.Title),
		Content: text,
		URL:     rawURL,
	}, nil
}
