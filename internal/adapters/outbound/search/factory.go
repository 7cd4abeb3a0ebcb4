package search

import (
	"fmt"

	"github.com/abdidvp/credence/internal/domain"
)

// NewSearcher builds the backend selected by cfg. It returns (nil, nil)
// when no provider is configured and no Tavily key is available.
func NewSearcher(cfg domain.SearchConfig) (Searcher, error) {
	provider := cfg.Provider
	if provider == domain.SearchProviderNone {
		if cfg.Tavily.APIKey == "" {
			return nil, nil
		}
		provider = domain.SearchProviderTavily
	}

	switch provider {
	case domain.SearchProviderTavily:
		if cfg.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return NewTavilyClient(cfg.Tavily.APIKey), nil

	case domain.SearchProviderSearXNG:
		if cfg.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return NewSearXNGClient(cfg.SearXNG.BaseURL, cfg.SearXNG.Timeout), nil

	case domain.SearchProviderNewsAPI:
		if cfg.NewsAPI.APIKey == "" {
			return nil, fmt.Errorf("newsapi key is missing")
		}
		return NewNewsAPIClient(cfg.NewsAPI.APIKey), nil

	case domain.SearchProviderStatic:
		return NewStaticSearcher(), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
