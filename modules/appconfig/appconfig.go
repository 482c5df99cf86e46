package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"contactform/modules/db/postgres"
	"contactform/modules/db/redis"
	"contactform/modules/logging"
	"contactform/modules/mail"
	"contactform/modules/middleware"
	"contactform/modules/telemetry"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
	BackendMemory   Backend = "memory"
)

type Config struct {
	Env string `env:"ENV" envDefault:"dev"`

	// --- http ----
	Host      string                `env:"HOST" envDefault:"0.0.0.0"`
	Port      int                   `env:"PORT" envDefault:"3000"`
	StaticDir string                `env:"STATIC_DIR"`
	Timeouts  ServerTimeout         `envPrefix:"HTTP_"`
	CORS      middleware.CORSConfig `envPrefix:"CORS_"`

	// --- storage ----
	Storage  StorageConfig           `envPrefix:"STORAGE_"`
	Redis    redis.RedisConfig       `envPrefix:"REDIS_"`
	Postgres postgres.PostgresConfig `envPrefix:"POSTGRES_"`

	// --- notifications ----
	// keys keep the names the contact page deployment already uses
	Mail mail.Config

	// --- observability ----
	Log logging.Config
	// since it has special naming conventions, we do not use prefix here
	Otel telemetry.Config
}

type StorageConfig struct {
	// Backend is the durable store. Requests fall back to memory while it is
	// unreachable.
	Backend      Backend       `env:"BACKEND" envDefault:"postgres"`
	PingInterval time.Duration `env:"PING_INTERVAL" envDefault:"2s"`
	PingTimeout  time.Duration `env:"PING_TIMEOUT" envDefault:"1s"`
}

type ServerTimeout struct {
	Read     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	Write    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	Shutdown time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file, then the process environment. Variables
// already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(c *Config) error {
	var errs []error
	switch c.Storage.Backend {
	case BackendPostgres, BackendRedis, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND: unknown backend %q", c.Storage.Backend))
	}
	if c.Storage.PingInterval < 0 {
		errs = append(errs, errors.New("STORAGE_PING_INTERVAL: must not be negative"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT: %d out of range", c.Port))
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS: must list at least one origin"))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
