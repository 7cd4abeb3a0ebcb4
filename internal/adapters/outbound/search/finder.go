package search

import (
	"context"
	"net/url"
	"strings"

	"github.com/abdidvp/credence/internal/domain"
)

// Finder adapts a Searcher to domain.SourceFinder. News coverage is
// requested and every hit is reported as relevant.
type Finder struct {
	searcher   Searcher
	maxResults int
}

func NewFinder(s Searcher, maxResults int) *Finder {
	return &Finder{searcher: s, maxResults: maxResults}
}

var _ domain.SourceFinder = (*Finder)(nil)

func (f *Finder) FindRelated(ctx context.Context, query string) ([]domain.SourceRecord, error) {
	resp, err := f.searcher.Search(ctx, &Request{
		Query:      query,
		Topic:      "news",
		MaxResults: f.maxResults,
	})
	if err != nil {
		return nil, err
	}

	records := make([]domain.SourceRecord, 0, len(resp.Results))
	for _, r := range resp.Results {
		if f.maxResults > 0 && len(records) >= f.maxResults {
			break
		}
		records = append(records, domain.SourceRecord{
			Name:        sourceName(r),
			URL:         r.URL,
			Snippet:     r.Content,
			PublishedAt: r.PublishedDate,
			Relevant:    true,
		})
	}
	return records, nil
}

// sourceName prefers the publisher reported by the backend and falls back
// to the result's host.
func sourceName(r Result) string {
	if r.Source != "" {
		return r.Source
	}
	if u, err := url.Parse(r.URL); err == nil && u.Hostname() != "" {
		return strings.TrimPrefix(u.Hostname(), "www.")
	}
	return r.Title
}
