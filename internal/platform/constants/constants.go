// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds the fixed values shared across layers: application
// metadata, server timing, rate limiting defaults, header and JSON field
// names, and the Redis key namespace.
package constants

import "time"

// # Metadata

const (
	AppName    = "worldwonders-api"
	AppVersion = "0.1.0-dev"

	// APIVersionPrefix prefixes every versioned route.
	APIVersionPrefix = "/v0"
)

// # Server Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultWriteTimeout must exceed GlobalRequestTimeout so the 504 from
	// the timeout middleware can still be written.
	DefaultWriteTimeout = 15 * time.Second

	// GlobalRequestTimeout bounds a single request end to end.
	GlobalRequestTimeout = 10 * time.Second

	// ShutdownTimeout is the grace period for in-flight requests on SIGTERM.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds the dependency checks run before serving.
	StartupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS refills one token every 200ms per client.
	DefaultRateLimitRPS = 5.0

	DefaultRateLimitBurst = 10

	// RateLimitCleanupInterval is how often idle client buckets are swept.
	RateLimitCleanupInterval = time.Minute

	// RateLimitClientTTL is the idle time after which a bucket is dropped.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderOrigin        = "Origin"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderRetryAfter    = "Retry-After"
)

// # JSON Field Identifiers

const (
	FieldError   = "error"
	FieldCode    = "code"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Key Namespace

// RedisPrefixWonders prefixes every filter cache key, followed by the dataset
// fingerprint so a new catalogue never reads stale entries.
const RedisPrefixWonders = "wonders:"
