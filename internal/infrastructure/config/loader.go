package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "CE"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration for the environment named by CE_ENV.
// The YAML file is optional; defaults and environment variables are enough to start.
func LoadConfig() (*Config, error) {
	// .env only seeds the process environment; a missing file is normal
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v, env)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in the search paths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return godotenv.Load(path)
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-secret configuration
func setDefaults(v *viper.Viper, env string) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.webhookMaxBodyBytes", 1<<20)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "file::memory:?cache=shared")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("storage.paymentOrders", "sql")

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.table", "payment_orders")
	v.SetDefault("dynamodb.userIndex", "user_id-index")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dedupTTL", 24) // hours

	v.SetDefault("gateway.provider", "razorpay")
	v.SetDefault("gateway.keyId", "")
	v.SetDefault("gateway.baseURL", "https://api.razorpay.com/v1")
	v.SetDefault("gateway.timeout", 10) // seconds
	v.SetDefault("gateway.currency", "INR")

	v.SetDefault("payment.minorUnitsPerCredit", 100)
	v.SetDefault("payment.maxCreditsPerOrder", 100000)
	v.SetDefault("payment.paymentMethod", "razorpay")
	v.SetDefault("payment.receiptPrefix", "rcpt")

	v.SetDefault("user.defaultFreeCredits", 100)
	v.SetDefault("user.seedDefaultUsers", env != Production)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
}

// getEnvironment determines the environment from CE_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides applies secrets and the settings operators most often
// override. Secrets are never given defaults and are only read from here or the file.
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"CE_DB_HOST":                    "database.host",
		"CE_DB_PORT":                    "database.port",
		"CE_DB_USERNAME":                "database.username",
		"CE_DB_PASSWORD":                "database.password",
		"CE_DB_NAME":                    "database.database",
		"CE_DB_SSL_MODE":                "database.sslMode",
		"CE_DB_DRIVER":                  "database.driver",
		"CE_GATEWAY_KEY_ID":             "gateway.keyId",
		"CE_GATEWAY_KEY_SECRET":         "gateway.keySecret",
		"CE_GATEWAY_WEBHOOK_SECRET":     "gateway.webhookSecret",
		"CE_REDIS_PASSWORD":             "redis.password",
		"CE_DYNAMODB_ACCESS_KEY_ID":     "dynamodb.accessKeyId",
		"CE_DYNAMODB_SECRET_ACCESS_KEY": "dynamodb.secretAccessKey",
		"CE_LOGGER_LEVEL":               "logger.level",
	}
	for envKey, configKey := range overrides {
		if value := os.Getenv(envKey); value != "" {
			v.Set(configKey, value)
		}
	}

	if maxOpenConns := getEnvInt("CE_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if serverPort := getEnvInt("CE_SERVER_PORT", 0); serverPort > 0 {
		v.Set("server.port", serverPort)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw numbers decoded into time.Duration fields to their units
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Redis.DedupTTL = time.Duration(config.Redis.DedupTTL) * time.Hour
	config.Gateway.Timeout = time.Duration(config.Gateway.Timeout) * time.Second
}
