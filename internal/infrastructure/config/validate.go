package config

import (
	"errors"
	"fmt"
)

// Validate fails fast on settings the service cannot run without
func Validate(c *Config) error {
	var problems []error

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			problems = append(problems, errors.New("database.host is required"))
		}
		if c.Database.Username == "" {
			problems = append(problems, errors.New("database.username is required"))
		}
		if c.Database.Database == "" {
			problems = append(problems, errors.New("database.database is required"))
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			problems = append(problems, errors.New("database.sqlitePath is required"))
		}
	default:
		problems = append(problems, fmt.Errorf("unsupported database.driver %q", c.Database.Driver))
	}

	switch c.Storage.PaymentOrders {
	case "sql":
	case "dynamodb":
		if c.DynamoDB.Table == "" || c.DynamoDB.Region == "" {
			problems = append(problems, errors.New("dynamodb.table and dynamodb.region are required"))
		}
	default:
		problems = append(problems, fmt.Errorf("unsupported storage.paymentOrders %q", c.Storage.PaymentOrders))
	}

	switch c.Gateway.Provider {
	case "razorpay":
		if c.Gateway.KeyID == "" || c.Gateway.KeySecret == "" || c.Gateway.WebhookSecret == "" {
			problems = append(problems, errors.New("gateway.keyId, gateway.keySecret and gateway.webhookSecret are required"))
		}
	case "mock":
		if c.Gateway.KeySecret == "" || c.Gateway.WebhookSecret == "" {
			problems = append(problems, errors.New("gateway.keySecret and gateway.webhookSecret are required"))
		}
	default:
		problems = append(problems, fmt.Errorf("unsupported gateway.provider %q", c.Gateway.Provider))
	}
	if c.Gateway.KeySecret != "" && c.Gateway.KeySecret == c.Gateway.WebhookSecret {
		problems = append(problems, errors.New("gateway.keySecret and gateway.webhookSecret must differ"))
	}

	if c.Payment.MinorUnitsPerCredit <= 0 {
		problems = append(problems, errors.New("payment.minorUnitsPerCredit must be positive"))
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		problems = append(problems, errors.New("redis.addr is required when redis is enabled"))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(problems...))
	}
	return nil
}
