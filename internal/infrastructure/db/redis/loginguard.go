package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	attemptWindow = 15 * time.Minute
	maxAttempts   = 10
)

// LoginGuard throttles repeated failed logins per email, backed by Redis.
// Key format: login_attempts:<email>
//
// The guard is advisory: the auth service fails open when Redis is down, so
// an outage degrades throttling, never authentication.
type LoginGuard struct {
	client *redis.Client
}

// NewLoginGuard creates a LoginGuard wrapping the given Redis client.
func NewLoginGuard(client *redis.Client) *LoginGuard {
	return &LoginGuard{client: client}
}

// TooManyAttempts reports whether this email has exhausted its attempt budget
// within the current window.
func (g *LoginGuard) TooManyAttempts(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Get(ctx, g.key(email)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login guard check: %w", err)
	}
	return n >= maxAttempts, nil
}

// RecordFailure counts one failed attempt; the window starts on the first.
func (g *LoginGuard) RecordFailure(ctx context.Context, email string) error {
	key := g.key(email)
	pipe := g.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, attemptWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login guard record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (g *LoginGuard) Reset(ctx context.Context, email string) error {
	return g.client.Del(ctx, g.key(email)).Err()
}

func (g *LoginGuard) key(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}
