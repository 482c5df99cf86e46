package redis

import "time"

// RedisConfig is parsed from REDIS_* variables when STORAGE_BACKEND=redis.
type RedisConfig struct {
	// Redis connection URL (redis:// or rediss://).
	URL string `env:"URL" envDefault:"redis://localhost:6379/0"`

	// Optional: client name visible in CLIENT LIST, etc.
	ClientName string `env:"CLIENT_NAME" envDefault:"contact-api"`

	// KeyPrefix namespaces every key written by the submission store.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"contact"`

	// SkipTLSVerify disables TLS certificate verification. Only use this in trusted
	// environments (e.g. some AWS ElastiCache setups with non-standard certs).
	SkipTLSVerify bool `env:"SKIP_TLS_VERIFY"`

	// RequireTLS enforces the use of rediss://.
	RequireTLS bool `env:"REQUIRE_TLS"`

	// Tuning flags, leave zero-valued to keep rueidis defaults.
	DisableRetry     bool          `env:"DISABLE_RETRY"`
	DisableCache     bool          `env:"DISABLE_CACHE" envDefault:"true"`
	ConnWriteTimeout time.Duration `env:"CONN_WRITE_TIMEOUT"`
	DialTimeout      time.Duration `env:"DIAL_TIMEOUT" envDefault:"2s"`

	// Enable OpenTelemetry integration via rueidisotel.
	EnableOtel bool `env:"ENABLE_OTEL"`
}
