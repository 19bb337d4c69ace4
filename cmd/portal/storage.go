package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/resourcehub/portal/internal/core/ports"
	"github.com/resourcehub/portal/internal/infrastructure/storage/file"
	"github.com/resourcehub/portal/internal/infrastructure/storage/memory"
	mongostore "github.com/resourcehub/portal/internal/infrastructure/storage/mongo"
	redisstore "github.com/resourcehub/portal/internal/infrastructure/storage/redis"
	"github.com/resourcehub/portal/internal/pkg/config"
)

// openStore builds the StateStore selected by STORAGE_DRIVER. The returned
// closer releases its connections.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.StateStore, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("memory storage selected, the session will not survive a restart")
		return memory.New(), noop, nil

	case config.StorageFile:
		s, err := file.Open(cfg.Storage.Path, cfg.Storage.Secret)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.Storage.Path).Bool("encrypted", cfg.Storage.Secret != "").Msg("file storage ready")
		return s, noop, nil

	case config.StorageRedis:
		s, err := redisstore.Open(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis storage ready")
		return s, s.Close, nil

	case config.StorageMongo:
		s, err := mongostore.Open(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo storage ready")
		return s, s.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
