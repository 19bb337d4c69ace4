package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	clientName    = "resource-portal"
	defaultDialTO = 5 * time.Second
	// State values are a few hundred bytes; a slow reply means Redis is in trouble.
	defaultIOTO = 2 * time.Second
)

// Config selects the Redis database that holds the portal's client state.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	Timeout  time.Duration
}

func (c Config) options() (*redis.Options, error) {
	if c.Addr == "" {
		return nil, errors.New("redis: address is required")
	}
	dial := c.Timeout
	if dial <= 0 {
		dial = defaultDialTO
	}
	return &redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		ClientName:   clientName,
		DialTimeout:  dial,
		ReadTimeout:  defaultIOTO,
		WriteTimeout: defaultIOTO,
		// One portal process holds one session, so a tiny pool suffices.
		PoolSize: 4,
	}, nil
}

// Open dials Redis and returns a Store that owns the connection. It fails
// unless the server answers a ping within the dial timeout.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	opts, err := cfg.options()
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", cfg.Addr, err)
	}
	return NewStore(client, cfg.Prefix), nil
}

// Close releases the connection pool. The context is unused and only there
// so Close matches the other stores' closers.
func (s *Store) Close(context.Context) error {
	return s.client.Close()
}
