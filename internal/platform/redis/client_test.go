// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/taibuivan/worldwonders/internal/platform/redis"
)

/*
TestParseOptions verifies URL fields survive and the pool limits are applied.
*/
func TestParseOptions(t *testing.T) {
	options, err := redisstore.ParseOptions("redis://:secret@cache.internal:6380/3")
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", options.Addr)
	assert.Equal(t, "secret", options.Password)
	assert.Equal(t, 3, options.DB)
	assert.Equal(t, 10, options.PoolSize)
	assert.Equal(t, 2*time.Second, options.ReadTimeout)
}

/*
TestNewClient_InvalidURL verifies malformed URLs fail before any dial.
*/
func TestNewClient_InvalidURL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	client, err := redisstore.NewClient(context.Background(), "not-a-redis-url", logger)

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "invalid URL")
}
