// Package db opens the gorm connection used by every repository.
package db

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	// DriverPostgres は本番用のPostgreSQLドライバー名です。
	DriverPostgres = "postgres"
	// DriverSQLite はローカル開発用のSQLiteドライバー名です。
	DriverSQLite = "sqlite"

	retryInterval = 3 * time.Second
)

// Config holds the database connection settings.
type Config struct {
	Driver       string `yaml:"driver"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	Name         string `yaml:"name"`
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	SSLMode      string `yaml:"sslmode"`
	InstanceName string `yaml:"instance_connection_name"` // Cloud SQL instance; takes precedence over Host/Port
	Path         string `yaml:"path"`                     // SQLite file path
	Migrate      bool   `yaml:"migrate"`

	Timeout time.Duration `yaml:"connect_timeout"`
}

// Opener opens a gorm connection for a DSN. It is swapped out in tests.
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	cfg := Config{
		Driver:       os.Getenv("DB_DRIVER"),
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		SSLMode:      os.Getenv("DB_SSLMODE"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		Path:         os.Getenv("DB_PATH"),
		Migrate:      os.Getenv("RUN_MIGRATIONS") == "true",
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	return cfg
}

// BuildDSN はConfigから接続文字列を組み立てます。
// InstanceNameが設定されている場合はCloud SQLのUnixソケットを使用します。
func BuildDSN(cfg Config) string {
	if cfg.Driver == DriverSQLite {
		if cfg.Path == "" {
			return "stockwatch.db"
		}
		return cfg.Path
	}

	sslmode := cfg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	host := cfg.Host
	port := cfg.Port
	if cfg.InstanceName != "" {
		host = "/cloudsql/" + cfg.InstanceName
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		host, port, cfg.User, cfg.Password, cfg.Name, sslmode)
}

// ConnectWithRetry calls open until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// OpenerFor returns the Opener for the configured driver.
// Driver errors are translated so that unique violations surface as gorm.ErrDuplicatedKey.
// gorm.Open keeps a reference to its Config, so every call gets a fresh one.
func OpenerFor(driver string) Opener {
	if driver == DriverSQLite {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	}
}

// OpenDB connects using cfg and, when cfg.Migrate is set, auto-migrates models.
func OpenDB(cfg Config, models ...any) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), timeout, OpenerFor(cfg.Driver))
	if err != nil {
		return nil, err
	}
	slog.Info("db connected", "driver", cfg.Driver)

	if cfg.Migrate && len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
		slog.Info("db migrated", "models", len(models))
	}
	return db, nil
}
