package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	appName        = "resource-portal"
	defaultTimeout = 10 * time.Second
)

// Config selects the database whose client_state collection holds the
// portal's persisted session.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func (c Config) clientOptions() (*options.ClientOptions, error) {
	if c.URI == "" {
		return nil, errors.New("mongo: uri is required")
	}
	if c.Database == "" {
		return nil, errors.New("mongo: database is required")
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return options.Client().
		ApplyURI(c.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout).
		// A single session document does not justify a large pool.
		SetMaxPoolSize(4), nil
}

// Open connects, waits for the primary to answer, and returns a Store that
// owns the client.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	opts, err := cfg.clientOptions()
	if err != nil {
		return nil, err
	}

	connectCtx, cancel := context.WithTimeout(ctx, *opts.ServerSelectionTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo primary unreachable: %w", err)
	}
	return NewStore(client.Database(cfg.Database)), nil
}

// Close disconnects the client behind the store.
func (s *Store) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}
