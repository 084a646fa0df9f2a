// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/taibuivan/worldwonders/internal/platform/constants"
)

// # Cross-Origin Resource Sharing

var (
	corsAllowedMethods = strings.Join([]string{http.MethodGet, http.MethodOptions}, ", ")
	corsAllowedHeaders = strings.Join([]string{"Accept", "Content-Type", constants.HeaderXRequestID}, ", ")
	corsExposedHeaders = strings.Join([]string{"Content-Length", constants.HeaderXRequestID, constants.HeaderRetryAfter}, ", ")
)

// AppConfig defines the behavior needed by the CORS middleware.
type AppConfig interface {
	IsDevelopment() bool
	AllowedOrigins() []string
}

// CORS answers cross-origin requests for the read-only API.
//
// Every origin is accepted in development; otherwise only the configured
// ones are. OPTIONS requests are answered with 204 and never reach the router.
func CORS(cfg AppConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			origin := request.Header.Get(constants.HeaderOrigin)
			if origin == "" {
				next.ServeHTTP(writer, request)
				return
			}

			header := writer.Header()
			header.Add("Vary", constants.HeaderOrigin)

			if cfg.IsDevelopment() || slices.Contains(cfg.AllowedOrigins(), origin) {
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Methods", corsAllowedMethods)
				header.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
				header.Set("Access-Control-Expose-Headers", corsExposedHeaders)
				header.Set("Access-Control-Max-Age", "300")
			}

			if request.Method == http.MethodOptions {
				writer.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
