package database

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config represents database configuration
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
}

// DefaultConfig returns a Config with default values and no credentials
func DefaultConfig() *Config {
	return &Config{
		Driver:          DriverPostgres,
		Port:            5432,
		SSLMode:         "disable",
		SQLitePath:      "file::memory:?cache=shared",
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    10 * time.Second,
		LogLevel:        "warn",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// FromAppConfig adapts the application configuration to database configuration
func FromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()

	if conf.Database.Driver != "" {
		dbConf.Driver = conf.Database.Driver
	}
	dbConf.Host = conf.Database.Host
	if port := ParsePort(conf.Database.Port); port > 0 {
		dbConf.Port = port
	}
	dbConf.Username = conf.Database.Username
	dbConf.Password = conf.Database.Password
	dbConf.Database = conf.Database.Database

	if conf.Database.SSLMode != "" {
		dbConf.SSLMode = conf.Database.SSLMode
	}
	if conf.Database.SQLitePath != "" {
		dbConf.SQLitePath = conf.Database.SQLitePath
	}
	if conf.Database.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = conf.Database.MaxOpenConns
	}
	if conf.Database.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = conf.Database.MaxIdleConns
	}
	if conf.Database.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = conf.Database.ConnMaxLifetime
	}
	if conf.Database.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = conf.Database.ConnMaxIdleTime
	}
	if conf.Database.QueryTimeout > 0 {
		dbConf.QueryTimeout = conf.Database.QueryTimeout
	}
	if conf.Database.RetryAttempts > 0 {
		dbConf.RetryAttempts = conf.Database.RetryAttempts
	}
	if conf.Database.RetryDelay > 0 {
		dbConf.RetryDelay = conf.Database.RetryDelay
	}
	if conf.Logger.Level != "" {
		dbConf.LogLevel = conf.Logger.Level
	}

	return dbConf
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" {
			return errors.New("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid port number: %d", c.Port)
		}
		if c.Username == "" {
			return errors.New("database username is required")
		}
		if c.Database == "" {
			return errors.New("database name is required")
		}
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("max idle connections must be positive, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// ParsePort converts a port string to an int, returning 0 when it is not a valid port
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
