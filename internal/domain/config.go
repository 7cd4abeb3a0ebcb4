package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Search provider names.
const (
	SearchProviderNone    = ""
	SearchProviderTavily  = "tavily"
	SearchProviderSearXNG = "searxng"
	SearchProviderNewsAPI = "newsapi"
	SearchProviderStatic  = "static"
)

// ValidSearchProviders enumerates all recognized search providers.
var ValidSearchProviders = []string{
	SearchProviderNone,
	SearchProviderTavily,
	SearchProviderSearXNG,
	SearchProviderNewsAPI,
	SearchProviderStatic,
}

// ValidLogLevels enumerates accepted log levels.
var ValidLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "fatal", "panic"}

// Config holds settings loaded from .credence.yaml.
type Config struct {
	LLM         LLMConfig         `yaml:"llm"         json:"llm"`
	Search      SearchConfig      `yaml:"search"      json:"search"`
	Chain       ChainConfig       `yaml:"chain"       json:"chain"`
	Cache       CacheConfig       `yaml:"cache"       json:"cache"`
	Log         LogConfig         `yaml:"log"         json:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	DataDir     string            `yaml:"data_dir"    json:"data_dir,omitempty"`
}

// LLMConfig configures the OpenAI-compatible chat model.
type LLMConfig struct {
	BaseURL     string  `yaml:"base_url"    json:"base_url,omitempty"`
	APIKey      string  `yaml:"api_key"     json:"-"`
	Model       string  `yaml:"model"       json:"model,omitempty"`
	Temperature float32 `yaml:"temperature" json:"temperature"`
	TimeoutSec  int     `yaml:"timeout_sec" json:"timeout_sec,omitempty"`
	MaxRetries  int     `yaml:"max_retries" json:"max_retries"`
}

// SearchConfig selects and configures the related-source provider.
type SearchConfig struct {
	Provider   string        `yaml:"provider"    json:"provider,omitempty"`
	MaxResults int           `yaml:"max_results" json:"max_results"`
	Tavily     TavilyConfig  `yaml:"tavily"      json:"tavily"`
	SearXNG    SearXNGConfig `yaml:"searxng"     json:"searxng"`
	NewsAPI    NewsAPIConfig `yaml:"newsapi"     json:"newsapi"`
}

type TavilyConfig struct {
	APIKey string `yaml:"api_key" json:"-"`
}

type SearXNGConfig struct {
	BaseURL string `yaml:"base_url" json:"base_url,omitempty"`
	Timeout int    `yaml:"timeout"  json:"timeout,omitempty"`
}

type NewsAPIConfig struct {
	APIKey string `yaml:"api_key" json:"-"`
}

// ChainConfig points at the news registry and vote manager contracts.
type ChainConfig struct {
	RPCURL       string `yaml:"rpc_url"       json:"rpc_url,omitempty"`
	NewsRegistry string `yaml:"news_registry" json:"news_registry,omitempty"`
	VoteManager  string `yaml:"vote_manager"  json:"vote_manager,omitempty"`
}

// CacheConfig configures the Redis vote-count cache. An empty URL disables it.
type CacheConfig struct {
	RedisURL   string `yaml:"redis_url"   json:"redis_url,omitempty"`
	TTLSeconds int    `yaml:"ttl_seconds" json:"ttl_seconds"`
}

// TTL returns the cache entry lifetime.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type LogConfig struct {
	Level string `yaml:"level" json:"level"`
	File  string `yaml:"file"  json:"file,omitempty"`
}

// ConcurrencyConfig bounds outbound LLM traffic and batch fan-out.
type ConcurrencyConfig struct {
	RPM        int `yaml:"rpm"         json:"rpm"`
	Burst      int `yaml:"burst"       json:"burst"`
	BatchLimit int `yaml:"batch_limit" json:"batch_limit"`
}

// DefaultConfig returns settings that work without any config file.
func DefaultConfig() Config {
	return Config{
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.2,
			TimeoutSec:  60,
			MaxRetries:  3,
		},
		Search: SearchConfig{
			MaxResults: 5,
		},
		Cache: CacheConfig{
			TTLSeconds: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
		Concurrency: ConcurrencyConfig{
			RPM:        60,
			Burst:      1,
			BatchLimit: 4,
		},
		DataDir: ".credence",
	}
}

// LLMEnabled reports whether enough is configured to call the model.
func (c Config) LLMEnabled() bool {
	return c.LLM.APIKey != ""
}

// ChainEnabled reports whether on-chain reads are configured.
func (c Config) ChainEnabled() bool {
	return c.Chain.RPCURL != "" && c.Chain.VoteManager != "" && c.Chain.NewsRegistry != ""
}

var hexAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	// 1. log level must be known
	if c.Log.Level != "" && !contains(ValidLogLevels, c.Log.Level) {
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}

	// 2. search provider must be known
	if !contains(ValidSearchProviders, c.Search.Provider) {
		return fmt.Errorf("unknown search.provider %q (valid: tavily, searxng, newsapi, static)", c.Search.Provider)
	}
	if c.Search.MaxResults < 0 {
		return fmt.Errorf("search.max_results must be >= 0 (got %d)", c.Search.MaxResults)
	}

	// 3. rate limits cannot be negative
	if c.Concurrency.RPM < 0 {
		return fmt.Errorf("concurrency.rpm must be >= 0 (got %d)", c.Concurrency.RPM)
	}
	if c.Concurrency.Burst < 0 {
		return fmt.Errorf("concurrency.burst must be >= 0 (got %d)", c.Concurrency.Burst)
	}

	// 4. batch fan-out within the batch size
	if c.Concurrency.BatchLimit < 0 || c.Concurrency.BatchLimit > MaxBatchSize {
		return fmt.Errorf("concurrency.batch_limit must be between 0 and %d (got %d)", MaxBatchSize, c.Concurrency.BatchLimit)
	}

	// 5. contract addresses must be hex if set
	if c.Chain.NewsRegistry != "" && !hexAddressRe.MatchString(c.Chain.NewsRegistry) {
		return fmt.Errorf("chain.news_registry %q is not a hex address", c.Chain.NewsRegistry)
	}
	if c.Chain.VoteManager != "" && !hexAddressRe.MatchString(c.Chain.VoteManager) {
		return fmt.Errorf("chain.vote_manager %q is not a hex address", c.Chain.VoteManager)
	}

	// 6. cache TTL and llm knobs
	if c.Cache.TTLSeconds < 0 {
		return fmt.Errorf("cache.ttl_seconds must be >= 0 (got %d)", c.Cache.TTLSeconds)
	}
	if c.LLM.MaxRetries < 0 {
		return fmt.Errorf("llm.max_retries must be >= 0 (got %d)", c.LLM.MaxRetries)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2 (got %.2f)", c.LLM.Temperature)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
