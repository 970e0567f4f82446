// Package redislock implements ports.OrderLocker with single-instance Redis locks.
package redislock

import (
	"context"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "bakery:order-lock:"

// DefaultTTL bounds how long a crashed holder can keep an order locked.
const DefaultTTL = 10 * time.Second

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Connect parses a redis:// URL and checks the server is reachable.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err = rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}

// Locker acquires per-order locks with SET NX PX and releases them with a
// compare-and-delete script.
type Locker struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewLocker returns a locker whose locks expire after ttl. A non-positive ttl
// means DefaultTTL.
func NewLocker(rdb *redis.Client, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Locker{rdb: rdb, ttl: ttl}
}

func (l *Locker) Lock(ctx context.Context, orderID kernel.UUID) (ports.Unlock, error) {
	key := keyPrefix + orderID.String()
	token := uuid.NewString()

	acquired, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock for order %s: %w", orderID, err)
	}
	if !acquired {
		return nil, ports.ErrLockNotAcquired
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
			return fmt.Errorf("release lock for order %s: %w", orderID, err)
		}
		return nil
	}, nil
}
