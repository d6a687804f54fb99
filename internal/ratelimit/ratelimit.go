package ratelimit

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter backed by redis, keyed per caller. With a
// nil client, a non-positive limit or a sub-second window it degrades open:
// auth endpoints stay reachable when redis is down or the limiter is
// misconfigured, they just lose throttling.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	logger *log.Logger
}

func New(rdb *redis.Client, limit int, window time.Duration, logger *log.Logger) *Limiter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Limiter{rdb: rdb, limit: limit, window: window, logger: logger}
}

// Allow reports whether the caller identified by key may proceed.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	if l.rdb == nil || l.limit <= 0 || l.window < time.Second {
		return true
	}
	bucket := fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/int64(l.window.Seconds()))

	n, err := l.rdb.Incr(ctx, bucket).Result()
	if err != nil {
		l.logger.Printf("ratelimit: incr key=%s error=%v", key, err)
		return true
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, bucket, l.window).Err(); err != nil {
			l.logger.Printf("ratelimit: expire key=%s error=%v", key, err)
		}
	}
	return n <= int64(l.limit)
}
