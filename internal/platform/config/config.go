// Package config loads the service configuration.
//
// Values come from an optional YAML file and are then overridden by environment
// variables, so a container can run with environment variables only.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"stockwatch/internal/platform/db"
)

// Config is the application configuration.
type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Database db.Config `yaml:"database"`

	Redis struct {
		Host     string        `yaml:"host"`
		Port     string        `yaml:"port"`
		Password string        `yaml:"password"`
		CacheTTL time.Duration `yaml:"cache_ttl"`
	} `yaml:"redis"`

	JWT struct {
		Secret     string        `yaml:"secret"`
		Expiration time.Duration `yaml:"expiration"`
	} `yaml:"jwt"`

	NATS struct {
		URL    string `yaml:"url"`
		Stream string `yaml:"stream"`
	} `yaml:"nats"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	var c Config
	c.HTTP.Addr = ":8080"
	c.Log.Level = "info"
	c.Database.Driver = db.DriverPostgres
	c.Database.Migrate = true
	c.Redis.CacheTTL = 5 * time.Minute
	c.JWT.Expiration = time.Hour
	c.NATS.Stream = "ALERTS"
	return &c
}

// Load reads path (if non-empty) on top of Default and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

// Path returns the config file path from CONFIG_FILE, or "" when unset.
func Path() string {
	return os.Getenv("CONFIG_FILE")
}

// SlogLevel converts Log.Level to a slog.Level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// RedisAddr returns host:port, or "" when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.Redis.Host == "" {
		return ""
	}
	port := c.Redis.Port
	if port == "" {
		port = "6379"
	}
	return c.Redis.Host + ":" + port
}

func overrideFromEnv(c *Config) {
	setString(&c.HTTP.Addr, "HTTP_ADDR")
	setString(&c.Log.Level, "LOG_LEVEL")

	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.SSLMode, "DB_SSLMODE")
	setString(&c.Database.InstanceName, "INSTANCE_CONNECTION_NAME")
	setString(&c.Database.Path, "DB_PATH")
	if v := os.Getenv("RUN_MIGRATIONS"); v != "" {
		c.Database.Migrate = v == "true"
	}

	setString(&c.Redis.Host, "REDIS_HOST")
	setString(&c.Redis.Port, "REDIS_PORT")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setDuration(&c.Redis.CacheTTL, "CACHE_TTL")

	setString(&c.JWT.Secret, "JWT_SECRET")
	setDuration(&c.JWT.Expiration, "JWT_EXPIRATION")

	setString(&c.NATS.URL, "NATS_URL")
	setString(&c.NATS.Stream, "NATS_STREAM")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
		return
	}
	// 単位なしの値は秒として扱う
	if n, err := strconv.Atoi(v); err == nil {
		*dst = time.Duration(n) * time.Second
		return
	}
	slog.Warn("ignoring invalid duration", "key", key, "value", v)
}
