package redis

import (
	"lumen/config"
	"testing"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache.internal"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.Password = "secret"
	cfg.Cache.Redis.Primary.DB = 2

	opts := Options(cfg)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestPing_GivesUpWhenUnreachable(t *testing.T) {
	client := goRedis.NewClient(&goRedis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	err := ping(client, 1, 50*time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, errConnectionExhausted)
}
