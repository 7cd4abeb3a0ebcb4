package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abdidvp/credence/internal/domain/scoring"
)

const (
	newsAPIEndpoint = "https://newsapi.org/v2/everything"
	newsAPITimeout  = 10 * time.Second

	// NewsAPI rejects long queries and caps the domains filter.
	newsAPIMaxQuery   = 100
	newsAPIMaxDomains = 10
)

// NewsAPIClient searches newsapi.org, restricted to trusted domains.
type NewsAPIClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:   apiKey,
		endpoint: newsAPIEndpoint,
		client:   &http.Client{Timeout: newsAPITimeout},
	}
}

// WithEndpoint points the client at a different API URL.
func (c *NewsAPIClient) WithEndpoint(u string) *NewsAPIClient {
	c.endpoint = u
	return c
}

var _ Searcher = (*NewsAPIClient)(nil)

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

func (c *NewsAPIClient) Search(ctx context.Context, req *Request) (*Response, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}

	pageSize := req.MaxResults
	if pageSize == 0 {
		pageSize = 5
	}

	q := u.Query()
	q.Set("q", truncate(req.Query, newsAPIMaxQuery))
	q.Set("apiKey", c.apiKey)
	q.Set("language", "en")
	q.Set("sortBy", "relevancy")
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("domains", strings.Join(trustedDomains(), ","))
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("newsapi error (status %d): %s", res.StatusCode, string(body))
	}

	var nr newsAPIResponse
	if err := json.NewDecoder(res.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}
	if nr.Status != "ok" {
		return nil, fmt.Errorf("newsapi returned status %q: %s", nr.Status, nr.Message)
	}

	out := &Response{Results: make([]Result, 0, len(nr.Articles))}
	for _, a := range nr.Articles {
		snippet := a.Description
		if snippet == "" {
			snippet = a.Title
		}
		out.Results = append(out.Results, Result{
			Source:        a.Source.Name,
			Title:         a.Title,
			URL:           a.URL,
			Content:       snippet,
			PublishedDate: a.PublishedAt,
		})
	}
	return out, nil
}

func trustedDomains() []string {
	domains := scoring.TrustedSources()
	if len(domains) > newsAPIMaxDomains {
		domains = domains[:newsAPIMaxDomains]
	}
	return domains
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
