// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/munchkin-api/internal/errors"
)

// Replication backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the full server configuration
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	GRPCPort        int           `env:"GRPC_PORT" envDefault:"50051"`
	PublicURL       string        `env:"PUBLIC_URL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	Redis           RedisConfig   `envPrefix:"REDIS_"`
}

// RedisConfig selects the shared store. An empty Addr keeps rooms in memory.
type RedisConfig struct {
	Addr      string `env:"ADDR"`
	PoolSize  int    `env:"POOL_SIZE" envDefault:"10"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"munchkin:"`
	UseTLS    bool   `env:"TLS"`
}

// Load reads MUNCHKIN_* variables and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "MUNCHKIN_"}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env cannot check on its own
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("HTTPAddr", c.HTTPAddr, vb)
	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("ShutdownTimeout", "must be positive")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("LogLevel", "must be debug, info, warn or error")
	}
	errors.ValidateEnum("LogFormat", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)
	if c.PublicURL != "" {
		if u, err := url.Parse(c.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
			vb.InvalidField("PublicURL", "must be an absolute URL")
		}
	}
	if c.Redis.PoolSize < 0 {
		vb.InvalidField("Redis.PoolSize", "must not be negative")
	}
	return vb.Build()
}

// Backend names the replication backend the settings select
func (c *Config) Backend() string {
	if c.Redis.Addr == "" {
		return BackendMemory
	}
	return BackendRedis
}

// ParsedPublicURL returns the share link base, nil when unset
func (c *Config) ParsedPublicURL() *url.URL {
	if c.PublicURL == "" {
		return nil
	}
	u, err := url.Parse(c.PublicURL)
	if err != nil {
		return nil
	}
	return u
}

// SlogLevel returns the configured level, info when unknown
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(value string) (slog.Level, bool) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
