// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/worldwonders/internal/platform/apperr"
	"github.com/taibuivan/worldwonders/internal/platform/constants"
	"github.com/taibuivan/worldwonders/internal/platform/respond"
)

// # Rate Limiting

// RateLimitConfig sets the per-client token bucket. Zero values fall back to
// the defaults in constants.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// limiterRegistry owns one token bucket per client address.
type limiterRegistry struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   rate.Limit
	burst   int
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterRegistry(cfg RateLimitConfig) *limiterRegistry {
	return &limiterRegistry{
		clients: make(map[string]*clientBucket),
		limit:   rate.Limit(cfg.RPS),
		burst:   cfg.Burst,
	}
}

// allow spends one token from the bucket of ip, creating the bucket on first use.
func (registry *limiterRegistry) allow(ip string, now time.Time) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	bucket, found := registry.clients[ip]
	if !found {
		bucket = &clientBucket{limiter: rate.NewLimiter(registry.limit, registry.burst)}
		registry.clients[ip] = bucket
	}
	bucket.lastSeen = now
	return bucket.limiter.AllowN(now, 1)
}

// sweep drops buckets idle for longer than ttl and returns how many remain.
func (registry *limiterRegistry) sweep(now time.Time, ttl time.Duration) int {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	for ip, bucket := range registry.clients {
		if now.Sub(bucket.lastSeen) > ttl {
			delete(registry.clients, ip)
		}
	}
	return len(registry.clients)
}

// RateLimit rejects clients that exceed their token bucket with 429 RATE_LIMITED
// and a Retry-After header.
//
// Idle buckets are evicted in the background until ctx is done.
func RateLimit(ctx context.Context, cfg RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.RPS <= 0 {
		cfg.RPS = constants.DefaultRateLimitRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = constants.DefaultRateLimitBurst
	}

	registry := newLimiterRegistry(cfg)

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				registry.sweep(now, constants.RateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	retryAfter := time.Duration(float64(time.Second) / cfg.RPS)
	retrySeconds := strconv.Itoa(int(math.Ceil(retryAfter.Seconds())))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !registry.allow(clientIP(request), time.Now()) {
				writer.Header().Set(constants.HeaderRetryAfter, retrySeconds)
				respond.Error(writer, request, apperr.RateLimited(retryAfter))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
