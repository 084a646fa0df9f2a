// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the cross-cutting HTTP processing chain.

Chain, outermost first:

  - RequestID: correlation ID and client address for every request.
  - StructuredLogger: request-scoped slog logger and the access log line.
  - RateLimit: per-client token buckets.
  - PanicRecovery: converts handler panics into INTERNAL_ERROR responses.
  - CORS: cross-origin headers and preflight answers.

Handlers only ever see requests that passed the whole chain.
*/
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/taibuivan/worldwonders/internal/platform/constants"
	"github.com/taibuivan/worldwonders/internal/platform/ctxutil"
)

// maxRequestIDLen bounds client-supplied correlation IDs.
const maxRequestIDLen = 128

// # Request Tracing

// RequestID attaches a correlation ID and the resolved client address to the request.
//
// A client-supplied X-Request-ID is kept when it is short printable ASCII.
// Otherwise a UUIDv7 is generated so IDs sort by creation time.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get(constants.HeaderXRequestID)
			if !isUsableRequestID(requestID) {
				requestID = newRequestID()
			}

			ctx := ctxutil.WithRequestID(request.Context(), requestID)
			ctx = ctxutil.WithClientIP(ctx, RealIP(request))
			writer.Header().Set(constants.HeaderXRequestID, requestID)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func isUsableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// # Client Address

// RealIP extracts the client IP, preferring X-Real-IP, then the first
// X-Forwarded-For hop, then the connection address.
func RealIP(request *http.Request) string {
	if ip := strings.TrimSpace(request.Header.Get(constants.HeaderXRealIP)); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}

// clientIP prefers the address resolved by [RequestID].
func clientIP(request *http.Request) string {
	if ip, ok := ctxutil.GetClientIP(request.Context()); ok {
		return ip
	}
	return RealIP(request)
}
