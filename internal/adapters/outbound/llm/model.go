// Package llm asks an OpenAI-compatible chat model to assess articles.
package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"golang.org/x/time/rate"

	"github.com/abdidvp/credence/internal/domain"
)

// NewChatModel connects to the model described by cfg.
func NewChatModel(ctx context.Context, cfg domain.LLMConfig) (model.BaseChatModel, error) {
	temperature := cfg.Temperature
	cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		Temperature: &temperature,
		Timeout:     time.Duration(cfg.TimeoutSec) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing chat model: %w", err)
	}
	return cm, nil
}

// NewLimiter spreads rpm requests per minute evenly. A non-positive rpm
// disables limiting.
func NewLimiter(rpm, burst int) *rate.Limiter {
	if rpm <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), max(1, burst))
}
