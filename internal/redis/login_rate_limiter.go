package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// LoginRateLimiter implements fixed-window rate limiting for login attempts,
// keyed by email. It fails open: a Redis error must not take authentication
// down with it.
type LoginRateLimiter struct {
	rdb    *goredis.Client
	limit  int
	window time.Duration
}

// NewLoginRateLimiter creates a login rate limiter.
// limit: maximum attempts per window
// window: window length
func NewLoginRateLimiter(rdb *goredis.Client, limit int, window time.Duration) *LoginRateLimiter {
	return &LoginRateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
	}
}

// Allow checks whether another login attempt is permitted for the email.
// Returns true if allowed (attempt counted), false if rate limited.
func (l *LoginRateLimiter) Allow(ctx context.Context, email string) bool {
	key := fmt.Sprintf("rate_limit:login:%s", strings.ToLower(email))

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		slog.Warn("Login rate limit check failed, allowing attempt", "error", err)
		return true
	}

	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			slog.Warn("Failed to set rate limit window expiry", "error", err)
		}
	}

	return count <= int64(l.limit)
}
