package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Options configures Connect. Zero values pick one attempt and a one second
// initial backoff.
type Options struct {
	Addr        string
	Password    string
	MaxAttempts int
	Backoff     time.Duration
}

// Connect returns a client once the server answers PING. Failed pings are
// retried with doubling backoff until MaxAttempts or ctx runs out.
func Connect(ctx context.Context, opts Options, logger *zerolog.Logger) (*redis.Client, error) {
	attempts := max(opts.MaxAttempts, 1)
	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		MaxRetries:   2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = client.Ping(ctx).Err(); err == nil {
			logger.Info().Str("addr", opts.Addr).Int("attempt", attempt).Msg("Redis connected")
			return client, nil
		}

		logger.Warn().Err(err).Str("addr", opts.Addr).Int("attempt", attempt).Msg("Redis ping failed")
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			client.Close()
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	client.Close()
	return nil, fmt.Errorf("failed to connect to Redis at %s after %d attempts: %w", opts.Addr, attempts, err)
}
