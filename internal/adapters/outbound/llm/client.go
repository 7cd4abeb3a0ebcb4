package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = 2 * time.Second
)

// Client wraps a chat model with rate limiting and retries.
type Client struct {
	model      model.BaseChatModel
	limiter    *rate.Limiter
	log        logrus.FieldLogger
	maxRetries int
	baseDelay  time.Duration
}

func NewClient(cm model.BaseChatModel, limiter *rate.Limiter, log logrus.FieldLogger) *Client {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Client{
		model:      cm,
		limiter:    limiter,
		log:        log,
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
	}
}

// WithRetries sets how many times a rate-limited or malformed reply is retried.
func (c *Client) WithRetries(n int) *Client {
	if n >= 0 {
		c.maxRetries = n
	}
	return c
}

// WithBaseDelay sets the first backoff delay; later attempts double it.
func (c *Client) WithBaseDelay(d time.Duration) *Client {
	c.baseDelay = d
	return c
}

// Generate sends one system and one user message and returns the reply
// text. Rate-limit errors (HTTP 429) are retried with exponential backoff.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	var lastErr error

	for i := 0; i <= c.maxRetries; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		messages := []*schema.Message{
			{Role: schema.System, Content: system},
			{Role: schema.User, Content: user},
		}

		resp, err := c.model.Generate(ctx, messages)
		if err != nil {
			if isRateLimited(err) && i < c.maxRetries {
				lastErr = err
				delay := c.baseDelay * time.Duration(1<<i)
				c.log.WithError(err).WithField("delay", delay).Warn("model rate limited, retrying")
				if err := sleep(ctx, delay); err != nil {
					return "", err
				}
				continue
			}
			return "", err
		}
		if resp == nil || strings.TrimSpace(resp.Content) == "" {
			lastErr = fmt.Errorf("empty response from model")
			continue
		}
		return resp.Content, nil
	}
	return "", lastErr
}

// GenerateJSON is Generate followed by decoding the reply into out. A reply
// that does not decode is requested again.
func (c *Client) GenerateJSON(ctx context.Context, system, user string, out any) error {
	var lastErr error

	for i := 0; i <= c.maxRetries; i++ {
		text, err := c.Generate(ctx, system, user)
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(extractJSON(text)), out); err != nil {
			lastErr = fmt.Errorf("json unmarshal: %w", err)
			c.log.WithError(err).Debug("model reply was not valid json")
			continue
		}
		return nil
	}
	return lastErr
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(strings.ToLower(msg), "too many requests")
}

// extractJSON strips markdown fences and any prose around the outermost
// JSON object.
func extractJSON(text string) string {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
