package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// The login throttle is the only Redis consumer, so the pool stays small and
// every operation times out quickly: a slow throttle check must never hold up
// a login.
const (
	dialTimeout = 2 * time.Second
	opTimeout   = 500 * time.Millisecond
	poolSize    = 8
)

// Options carries the externally configurable connection settings.
type Options struct {
	Addr string
	DB   int
}

// Connect opens a Redis client tuned for the throttle workload and verifies
// connectivity with a ping before handing it out.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		DB:           opts.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
		PoolSize:     poolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis at %s: %w", opts.Addr, err)
	}

	return client, nil
}
