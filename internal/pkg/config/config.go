package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT,      default=3000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API     APIConfig
	Storage StorageConfig
	Notify  NotifyConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// APIConfig points at the remote resource hub REST API.
type APIConfig struct {
	BaseURL     string        `env:"API_BASE_URL,     default=http://localhost:8080/api"`
	Timeout     time.Duration `env:"API_TIMEOUT,      default=10s"`
	LongTimeout time.Duration `env:"API_LONG_TIMEOUT, default=30s"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER, default=file"`
	Path   string `env:"STORAGE_PATH,   default=.portal/state.json"`
	// Secret enables at-rest encryption of the file driver.
	Secret string `env:"STORAGE_SECRET"`
}

type NotifyConfig struct {
	Duration   time.Duration `env:"NOTIFY_DURATION,   default=3s"`
	Transition time.Duration `env:"NOTIFY_TRANSITION, default=300ms"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=resource_portal"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,   default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,     default=0"`
	Prefix   string `env:"REDIS_PREFIX, default=portal"`
}

// IsProduction reports whether ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects settings the portal can't start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageFile, StorageRedis, StorageMongo, StorageMemory:
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("config: API_BASE_URL is required")
	}
	if c.Notify.Transition < 0 {
		return fmt.Errorf("config: NOTIFY_TRANSITION must not be negative")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through the given lookuper and validates it.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
