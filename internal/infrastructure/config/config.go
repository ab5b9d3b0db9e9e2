package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Metrics     MetricsConfig  `mapstructure:"metrics"`
	Database    DatabaseConfig `mapstructure:"database"`
	Storage     StorageConfig  `mapstructure:"storage"`
	DynamoDB    DynamoDBConfig `mapstructure:"dynamodb"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Gateway     GatewayConfig  `mapstructure:"gateway"`
	Payment     PaymentConfig  `mapstructure:"payment"`
	User        UserConfig     `mapstructure:"user"`
	Logger      LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host                string        `mapstructure:"host"`
	Port                int           `mapstructure:"port"`
	ReadTimeout         time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout        time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout         time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout   time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout     time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	WebhookMaxBodyBytes int64         `mapstructure:"webhookMaxBodyBytes"`
}

// MetricsConfig contains the prometheus endpoint settings
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port"`
	Path    string `mapstructure:"path"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	SQLitePath      string        `mapstructure:"sqlitePath"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// StorageConfig selects the payment order store
type StorageConfig struct {
	PaymentOrders string `mapstructure:"paymentOrders"` // sql or dynamodb
}

// DynamoDBConfig contains the DynamoDB order store settings
type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	Table           string `mapstructure:"table"`
	UserIndex       string `mapstructure:"userIndex"`
}

// RedisConfig contains the webhook dedup cache settings
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	DedupTTL time.Duration `mapstructure:"dedupTTL"` // hours
}

// GatewayConfig contains payment gateway credentials and endpoints
type GatewayConfig struct {
	Provider      string        `mapstructure:"provider"` // razorpay or mock
	KeyID         string        `mapstructure:"keyId"`
	KeySecret     string        `mapstructure:"keySecret"`
	WebhookSecret string        `mapstructure:"webhookSecret"`
	BaseURL       string        `mapstructure:"baseURL"`
	Timeout       time.Duration `mapstructure:"timeout"` // seconds
	Currency      string        `mapstructure:"currency"`
}

// PaymentConfig contains order pricing settings
type PaymentConfig struct {
	MinorUnitsPerCredit int64  `mapstructure:"minorUnitsPerCredit"`
	MaxCreditsPerOrder  int64  `mapstructure:"maxCreditsPerOrder"`
	PaymentMethod       string `mapstructure:"paymentMethod"`
	ReceiptPrefix       string `mapstructure:"receiptPrefix"`
}

// UserConfig contains user defaults
type UserConfig struct {
	DefaultFreeCredits int64 `mapstructure:"defaultFreeCredits"`
	SeedDefaultUsers   bool  `mapstructure:"seedDefaultUsers"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
