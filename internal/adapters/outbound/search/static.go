package search

import "context"

// StaticSearcher returns a fixed set of wire-service results. It lets the
// pipeline run offline and in demos.
type StaticSearcher struct{}

func NewStaticSearcher() *StaticSearcher { return &StaticSearcher{} }

var _ Searcher = (*StaticSearcher)(nil)

var staticResults = []Result{
	{
		Source:  "Reuters",
		URL:     "https://reuters.com/article/example",
		Content: "Related coverage from Reuters news agency.",
	},
	{
		Source:  "BBC News",
		URL:     "https://bbc.com/news/example",
		Content: "BBC coverage of similar topic.",
	},
	{
		Source:  "Associated Press",
		URL:     "https://apnews.com/article/example",
		Content: "AP wire service reporting on related events.",
	},
}

func (s *StaticSearcher) Search(_ context.Context, req *Request) (*Response, error) {
	n := len(staticResults)
	if req.MaxResults > 0 && req.MaxResults < n {
		n = req.MaxResults
	}
	results := make([]Result, n)
	copy(results, staticResults[:n])
	return &Response{Results: results}, nil
}
