package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DriverJSON     = "json"
	DriverPostgres = "postgres"
)

// Config configuration of the hotel manager process.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Search   SearchConfig   `toml:"search"`
}

// StorageConfig selects where hotels and bookings are loaded from.
type StorageConfig struct {
	Driver       string `toml:"driver"` // json | postgres
	HotelsFile   string `toml:"hotels_file"`
	BookingsFile string `toml:"bookings_file"`
}

// DatabaseConfig PostgreSQL connection settings, used by the postgres driver only.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// LogsConfig logger settings. An empty File means stderr.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig Prometheus endpoint settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
	HTTPPort    int    `toml:"http_port"`
}

// SearchConfig limits on Search commands.
type SearchConfig struct {
	MaxDays int `toml:"max_days"` // 0 = no limit
}

// DSN builds a lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: DriverJSON,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "hotel_manager",
			SSLMode:         "disable",
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "error",
		},
		Metrics: MetricsConfig{
			ServiceName: "hotel_manager",
			Path:        "/metrics",
			HTTPPort:    9100,
		},
	}
}

// Load reads the TOML file at path on top of the defaults, then applies
// variables from an optional .env file and the process environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrDecode, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("HOTEL_MANAGER_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("HOTEL_MANAGER_HOTELS_FILE"); v != "" {
		cfg.Storage.HotelsFile = v
	}
	if v := os.Getenv("HOTEL_MANAGER_BOOKINGS_FILE"); v != "" {
		cfg.Storage.BookingsFile = v
	}
	if v := os.Getenv("HOTEL_MANAGER_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("HOTEL_MANAGER_LOG_LEVEL"); v != "" {
		cfg.Logs.Level = v
	}
	if v := os.Getenv("HOTEL_MANAGER_METRICS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: HOTEL_MANAGER_METRICS_ENABLED=%q", ErrInvalidValue, v)
		}
		cfg.Metrics.Enabled = enabled
	}
	return nil
}

// Validate checks the values the rest of the program relies on.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverJSON, DriverPostgres:
	default:
		return fmt.Errorf("%w: storage.driver=%q", ErrInvalidValue, c.Storage.Driver)
	}

	switch c.Logs.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logs.level=%q", ErrInvalidValue, c.Logs.Level)
	}

	if c.Search.MaxDays < 0 {
		return fmt.Errorf("%w: search.max_days must not be negative", ErrInvalidValue)
	}

	if c.Metrics.Enabled && (c.Metrics.HTTPPort <= 0 || c.Metrics.HTTPPort > 65535) {
		return fmt.Errorf("%w: metrics.http_port=%d", ErrInvalidValue, c.Metrics.HTTPPort)
	}

	return nil
}
