package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"video-processor/internal/model"
	"video-processor/internal/port"

	"github.com/redis/go-redis/v9"
)

// recordTTL bounds how long a ledger record stays cached. Records are
// never deleted upstream, so a short TTL only costs an occasional
// ledger read.
const recordTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetVideoRecord(ctx context.Context, id string) (*model.VideoRecord, error) {
	log.Printf("getting entry in cache for video #%s...", id)

	val, err := c.client.Get(ctx, getCacheKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var v model.VideoRecord
	if err := json.Unmarshal([]byte(val), &v); err != nil {
		return nil, fmt.Errorf("unmarshal failed: %w", err)
	}

	return &v, nil
}

func (c *Cache) SetVideoRecord(ctx context.Context, id string, v *model.VideoRecord) error {
	log.Printf("creating entry in cache for video #%s...", id)

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	if err := c.client.Set(ctx, getCacheKey(id), data, recordTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteVideoRecord(ctx context.Context, id string) error {
	log.Printf("deleting entry in cache for video #%s...", id)

	if err := c.client.Del(ctx, getCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(id string) string {
	return "video:" + id
}
