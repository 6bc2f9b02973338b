// Package redis wraps the go-redis client the favor state repository and the
// repair script share.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the go-redis surface the module depends on. Tests back it with
// miniredis.
type Client interface {
	redis.UniversalClient
}

// Options tunes the connection pool. Zero values keep the go-redis defaults.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

func (o *Options) apply(dst *redis.Options) {
	if o == nil {
		return
	}
	if o.PoolSize > 0 {
		dst.PoolSize = o.PoolSize
	}
	if o.MinIdleConns > 0 {
		dst.MinIdleConns = o.MinIdleConns
	}
	if o.ConnMaxIdleTime > 0 {
		dst.ConnMaxIdleTime = o.ConnMaxIdleTime
	}
	if o.MaxRetries != 0 {
		dst.MaxRetries = o.MaxRetries
	}
	if o.UseTLS && dst.TLSConfig == nil {
		dst.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // self-signed certs in dev clusters
		}
	}
}

// NewClient creates a client for a single instance at host:port
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	redisOpts := &redis.Options{Addr: endpoint}
	opts.apply(redisOpts)
	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL creates a client from a redis:// or rediss:// URL, the
// form REDIS_URL is given in. Options override what the URL leaves unset.
func NewClientFromURL(rawURL string, opts *Options) (Client, error) {
	if rawURL == "" {
		return nil, errors.New("redis: url is required")
	}

	redisOpts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	opts.apply(redisOpts)
	return redis.NewClient(redisOpts), nil
}

// Check pings the server, giving up after timeout
func Check(ctx context.Context, c Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
