// Package search looks up coverage related to an article through a
// pluggable search backend.
package search

import "context"

// Searcher is the common interface of all search backends.
type Searcher interface {
	Search(ctx context.Context, req *Request) (*Response, error)
}

// Request is a backend-neutral search request.
type Request struct {
	Query      string
	Topic      string // "news" or "general"
	MaxResults int
}

// Response is a backend-neutral search response.
type Response struct {
	Results []Result
}

// Result is one search hit.
type Result struct {
	Source        string
	Title         string
	URL           string
	Content       string
	Score         float64
	PublishedDate string
}
