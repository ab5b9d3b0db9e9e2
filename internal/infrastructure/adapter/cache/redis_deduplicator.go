package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	cacheport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/cache"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
)

const (
	keyPrefix  = "webhook:event:"
	DefaultTTL = 24 * time.Hour
)

// Options configures the redis connection
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisDeduplicator remembers handled webhook event ids in redis
type RedisDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

var _ cacheport.EventDeduplicator = (*RedisDeduplicator)(nil)

// NewRedisDeduplicator connects to redis and verifies the connection with PING
func NewRedisDeduplicator(ctx context.Context, opts Options, logger coreport.Logger) (*RedisDeduplicator, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	logger.Info("Webhook dedup cache connected", map[string]any{
		"addr": opts.Addr,
		"db":   opts.DB,
	})
	return NewRedisDeduplicatorWithClient(client, opts.TTL, logger), nil
}

// NewRedisDeduplicatorWithClient wraps an existing client
func NewRedisDeduplicatorWithClient(client *redis.Client, ttl time.Duration, logger coreport.Logger) *RedisDeduplicator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisDeduplicator{client: client, ttl: ttl, logger: logger}
}

// Seen reports whether the event id was marked
func (d *RedisDeduplicator) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := d.client.Exists(ctx, eventKey(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists: %w", err)
	}
	return n > 0, nil
}

// MarkProcessed marks the event id for the configured TTL. An existing mark is left untouched.
func (d *RedisDeduplicator) MarkProcessed(ctx context.Context, eventID string) error {
	created, err := d.client.SetNX(ctx, eventKey(eventID), time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !created {
		d.logger.Debug("Webhook event already marked", map[string]any{"event_id": eventID})
	}
	return nil
}

// Ping checks the connection
func (d *RedisDeduplicator) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Close closes the underlying client
func (d *RedisDeduplicator) Close() error {
	return d.client.Close()
}

func eventKey(eventID string) string {
	return keyPrefix + eventID
}
