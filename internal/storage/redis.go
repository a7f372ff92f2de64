package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"qrmesa/internal/domain"
)

// RedisTableCache caches QR-token lookups for the scan hot path. A miss
// or a Redis failure falls back to the database; entries are evicted on
// token rotation and expire on their own as a safety net.
type RedisTableCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisTableCache(client *redis.Client, ttl time.Duration) *RedisTableCache {
	return &RedisTableCache{Client: client, TTL: ttl}
}

func (c *RedisTableCache) key(qrCode string) string {
	return "table:qr:" + qrCode
}

func (c *RedisTableCache) GetByQRCode(ctx context.Context, qrCode string) (*domain.Table, error) {
	raw, err := c.Client.Get(ctx, c.key(qrCode)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var table domain.Table
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

func (c *RedisTableCache) Set(ctx context.Context, table *domain.Table) error {
	if table.QRCode == "" {
		return nil
	}
	payload, _ := json.Marshal(table)
	return c.Client.Set(ctx, c.key(table.QRCode), payload, c.TTL).Err()
}

func (c *RedisTableCache) Invalidate(ctx context.Context, qrCode string) error {
	return c.Client.Del(ctx, c.key(qrCode)).Err()
}
