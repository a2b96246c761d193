package redis

import (
	"context"
	"errors"
	"fmt"
	"lumen/config"
	"net"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const retryWait = time.Second

var errConnectionExhausted = errors.New("redis connection retries exhausted")

// Options maps the primary cache settings onto client options.
func Options(cfg *config.Config) *goRedis.Options {
	primary := cfg.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	}
}

func New(cfg *config.Config) (*goRedis.Client, error) {
	client := goRedis.NewClient(Options(cfg))

	if err := ping(client, cfg.Cache.Redis.MaxRetry, time.Duration(cfg.Cache.Redis.PingTimeout)*time.Second); err != nil {
		_ = client.Close()

		return nil, err
	}

	log.Info().
		Int("db", cfg.Cache.Redis.Primary.DB).
		Str("addr", client.Options().Addr).
		Msg("Connected to Redis")

	return client, nil
}

// ping tries up to maxRetry times, bounding each attempt by timeout.
func ping(client *goRedis.Client, maxRetry int, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = time.Second
	}

	var lastErr error

	for attempt := range max(maxRetry, 1) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		lastErr = client.Ping(ctx).Err()
		cancel()

		if lastErr == nil {
			return nil
		}

		log.Error().
			Err(lastErr).
			Int("attempt", attempt+1).
			Msg("Failed connecting to redis, retrying")

		time.Sleep(retryWait)
	}

	return fmt.Errorf("%w: %w", errConnectionExhausted, lastErr)
}
