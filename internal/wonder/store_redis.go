// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores the names selected by a filter so repeated list and count
// queries can skip the scan.
//
// A miss is reported as (nil, false, nil). Errors are advisory: callers fall
// back to the engine and never surface them to clients.
type Cache interface {
	GetNames(ctx context.Context, key string) ([]string, bool, error)
	SetNames(ctx context.Context, key string, names []string) error
}

// RedisCache implements [Cache] on top of a go-redis client.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed [Cache] whose entries expire after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

/*
GetNames returns the cached names stored under key.

Returns:
  - []string: Wonder names in catalogue order
  - bool: false on a cache miss
  - error: Connectivity or decoding errors
*/
func (cache *RedisCache) GetNames(ctx context.Context, key string) ([]string, bool, error) {
	raw, err := cache.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis_filter_cache_get_failed: %w", err)
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, false, fmt.Errorf("redis_filter_cache_decode_failed: %w", err)
	}
	return names, true, nil
}

// SetNames stores names under key with the configured TTL.
func (cache *RedisCache) SetNames(ctx context.Context, key string, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("redis_filter_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(ctx, key, raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_filter_cache_set_failed: %w", err)
	}
	return nil
}
