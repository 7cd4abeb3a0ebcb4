package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/credence/internal/domain"
)

const fileName = ".credence.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .credence.yaml and
// overlaying secrets from the environment.
type YAMLLoader struct {
	getenv func(string) string
}

// New creates a YAMLLoader reading the process environment.
func New() *YAMLLoader { return &YAMLLoader{getenv: os.Getenv} }

// WithEnv replaces the environment lookup.
func (l *YAMLLoader) WithEnv(getenv func(string) string) *YAMLLoader {
	l.getenv = getenv
	return l
}

// Load reads .credence.yaml from dir. Keys missing from the file keep
// their DefaultConfig values, and a missing file yields the defaults.
func (l *YAMLLoader) Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// no file, keep defaults
	case err != nil:
		return domain.Config{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.Config{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
	}

	l.overlayEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}

// overlayEnv lets secrets and endpoints come from the environment instead
// of the checked-in file. Set variables win over file values.
func (l *YAMLLoader) overlayEnv(cfg *domain.Config) {
	set := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := l.getenv(k); v != "" {
				*dst = v
				return
			}
		}
	}

	set(&cfg.LLM.APIKey, "CREDENCE_LLM_API_KEY", "OPENAI_API_KEY")
	set(&cfg.Search.Tavily.APIKey, "TAVILY_API_KEY")
	set(&cfg.Search.NewsAPI.APIKey, "NEWS_API_KEY")
	set(&cfg.Chain.RPCURL, "CREDENCE_RPC_URL")
	set(&cfg.Cache.RedisURL, "CREDENCE_REDIS_URL")
}
