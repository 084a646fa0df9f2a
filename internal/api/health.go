// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/taibuivan/worldwonders/internal/platform/constants"
	"github.com/taibuivan/worldwonders/internal/platform/respond"
)

// readinessTimeout bounds all readiness checks of one probe.
const readinessTimeout = 3 * time.Second

// # Health Probes

// HealthCheck is one named dependency probed by /ready.
type HealthCheck struct {
	Name string
	Run  func(ctx context.Context) error
}

// CatalogCheck fails while the catalogue reports no wonders.
func CatalogCheck(size func() int) HealthCheck {
	return HealthCheck{
		Name: "catalog",
		Run: func(context.Context) error {
			if size() == 0 {
				return errors.New("no wonders loaded")
			}
			return nil
		},
	}
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready handlers.
//
// Liveness never touches dependencies. Readiness runs checks in order and
// answers 503 "degraded" when any of them fails.
func NewHealthHandlers(checks []HealthCheck, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	liveness = func(writer http.ResponseWriter, request *http.Request) {
		respond.OK(writer, map[string]string{
			constants.FieldStatus:  "ok",
			constants.FieldApp:     constants.AppName,
			constants.FieldVersion: constants.AppVersion,
		})
	}

	readiness = func(writer http.ResponseWriter, request *http.Request) {
		ctx, cancel := context.WithTimeout(request.Context(), readinessTimeout)
		defer cancel()

		results := make([]checkResult, 0, len(checks))
		ready := true

		for _, check := range checks {
			result := checkResult{Name: check.Name, IsOK: true}
			if err := check.Run(ctx); err != nil {
				result.IsOK = false
				result.Error = err.Error()
				ready = false
				logger.ErrorContext(ctx, "readiness_check_failed",
					slog.String("dependency", check.Name),
					slog.Any("error", err),
				)
			}
			results = append(results, result)
		}

		status, httpStatus := "ready", http.StatusOK
		if !ready {
			status, httpStatus = "degraded", http.StatusServiceUnavailable
		}

		respond.Status(writer, httpStatus, map[string]any{
			constants.FieldStatus: status,
			constants.FieldChecks: results,
		})
	}

	return liveness, readiness
}
