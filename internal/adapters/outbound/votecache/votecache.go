// Package votecache puts a Redis cache-aside layer in front of a vote ledger.
package votecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/abdidvp/credence/internal/domain"
)

const pingTimeout = 3 * time.Second

// Connect opens a Redis client for redisURL. It returns nil when the URL is
// empty, invalid or unreachable; the cache is then disabled.
func Connect(ctx context.Context, redisURL string, log logrus.FieldLogger) *redis.Client {
	if redisURL == "" {
		log.Debug("redis: no URL configured, vote caching disabled")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.WithError(err).Warn("redis: invalid URL, vote caching disabled")
		return nil
	}

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).Warn("redis: connection failed, vote caching disabled")
		_ = rdb.Close()
		return nil
	}

	log.Debug("redis: connected, vote caching enabled")
	return rdb
}

// Ledger caches vote counts read from the wrapped ledger. With a nil client
// every call goes straight through. Cache failures never fail a read.
type Ledger struct {
	next domain.VoteLedger
	rdb  *redis.Client
	ttl  time.Duration
	log  logrus.FieldLogger
}

func New(next domain.VoteLedger, rdb *redis.Client, ttl time.Duration, log logrus.FieldLogger) *Ledger {
	return &Ledger{next: next, rdb: rdb, ttl: ttl, log: log}
}

var _ domain.VoteLedger = (*Ledger)(nil)

func (l *Ledger) VoteCounts(ctx context.Context, newsID uint64) (domain.VoteCounts, error) {
	if l.rdb == nil {
		return l.next.VoteCounts(ctx, newsID)
	}

	key := votesKey(newsID)
	data, err := l.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var votes domain.VoteCounts
		if jerr := json.Unmarshal(data, &votes); jerr == nil {
			return votes, nil
		}
		l.log.WithField("key", key).Warn("redis: discarding undecodable cache entry")
	case errors.Is(err, redis.Nil):
		// miss
	default:
		l.log.WithError(err).Warn("redis: cache read failed")
	}

	votes, err := l.next.VoteCounts(ctx, newsID)
	if err != nil {
		return domain.VoteCounts{}, err
	}

	if b, err := json.Marshal(votes); err == nil {
		if err := l.rdb.Set(ctx, key, b, l.ttl).Err(); err != nil {
			l.log.WithError(err).Warn("redis: cache write failed")
		}
	}
	return votes, nil
}

// Invalidate drops the cached counts for one news item.
func (l *Ledger) Invalidate(ctx context.Context, newsID uint64) error {
	if l.rdb == nil {
		return nil
	}
	return l.rdb.Del(ctx, votesKey(newsID)).Err()
}

func votesKey(newsID uint64) string {
	return fmt.Sprintf("credence:votes:%d", newsID)
}
