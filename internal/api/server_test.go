// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/worldwonders/internal/api"
	"github.com/taibuivan/worldwonders/internal/platform/config"
	"github.com/taibuivan/worldwonders/internal/wonder"
)

type testServer struct {
	handler http.Handler
	docs    *api.Docs
}

func newTestServer(t *testing.T, checkCache func(context.Context) error) testServer {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	catalog, err := wonder.Load()
	require.NoError(t, err)

	docs, err := api.LoadDocs(ctx, api.DocsPath)
	require.NoError(t, err)

	checks := []api.HealthCheck{api.CatalogCheck(catalog.Len)}
	if checkCache != nil {
		checks = append(checks, api.HealthCheck{Name: "redis", Run: checkCache})
	}
	liveness, readiness := api.NewHealthHandlers(checks, logger)

	cfg := &config.Config{
		ServerHost:     "127.0.0.1",
		ServerPort:     "8138",
		Environment:    "development",
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}

	service := wonder.NewService(catalog, nil, logger).WithIndexSource(func(int) int { return 0 })
	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Wonder:    wonder.NewHandler(service),
		Docs:      docs,
	})

	return testServer{handler: server.Handler(), docs: docs}
}

func (server testServer) get(target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

/*
TestServer_NotFound verifies unknown routes share one 404 body at every depth.
*/
func TestServer_NotFound(t *testing.T) {
	server := newTestServer(t, nil)

	for _, target := range []string{"/", "/nope", "/v0", "/v0/unknown", "/v0/wonders/unknown/deeper", "/v0/wonders/name"} {
		t.Run(target, func(t *testing.T) {
			recorder := server.get(target)

			assert.Equal(t, http.StatusNotFound, recorder.Code)
			assert.JSONEq(t, `{"error":"Whoops! Route not found. Nothing to see here","code":"NOT_FOUND"}`, recorder.Body.String())
		})
	}
}

/*
TestServer_Middleware verifies the request ID and CORS headers.
*/
func TestServer_Middleware(t *testing.T) {
	server := newTestServer(t, nil)

	request := httptest.NewRequest(http.MethodGet, "/v0/wonders/count", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	server.handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestServer_Health verifies the liveness and readiness probes.
*/
func TestServer_Health(t *testing.T) {
	t.Run("liveness", func(t *testing.T) {
		recorder := newTestServer(t, nil).get("/health")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":{"status":"ok","app":"worldwonders-api","version":"0.1.0-dev"}}`, recorder.Body.String())
	})

	t.Run("ready_without_cache", func(t *testing.T) {
		recorder := newTestServer(t, nil).get("/ready")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"data":{"status":"ready","checks":[{"name":"catalog","ok":true}]}}`, recorder.Body.String())
	})

	t.Run("degraded_when_cache_down", func(t *testing.T) {
		recorder := newTestServer(t, func(context.Context) error {
			return errors.New("connection refused")
		}).get("/ready")

		assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
		assert.JSONEq(t, `{"data":{"status":"degraded","checks":[
			{"name":"catalog","ok":true},
			{"name":"redis","ok":false,"error":"connection refused"}
		]}}`, recorder.Body.String())
	})
}

/*
TestServer_Docs verifies the documentation routes.
*/
func TestServer_Docs(t *testing.T) {
	server := newTestServer(t, nil)

	page := server.get("/v0/docs")
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, page.Body.String(), "World Wonders API")
	assert.Contains(t, page.Body.String(), "/v0/wonders/name/{name}")
	assert.Contains(t, page.Body.String(), `href="/v0/docs/api.json"`)

	document := server.get("/v0/docs/api.json")
	require.Equal(t, http.StatusOK, document.Code)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(document.Body.Bytes(), &parsed))
	assert.Equal(t, "3.0.3", parsed["openapi"])
	assert.Contains(t, parsed["paths"], "/wonders/oldest")
}

/*
TestServer_Contract verifies live responses against the documented schemas.
*/
func TestServer_Contract(t *testing.T) {
	server := newTestServer(t, nil)

	tests := []struct {
		target string
		path   string
		status int
	}{
		{target: "/v0/wonders", path: "/wonders", status: http.StatusOK},
		{target: "/v0/wonders?name=zzz", path: "/wonders", status: http.StatusOK},
		{target: "/v0/wonders?sort_by=Height", path: "/wonders", status: http.StatusBadRequest},
		{target: "/v0/wonders/count?category=Civ6", path: "/wonders/count", status: http.StatusOK},
		{target: "/v0/wonders/categories", path: "/wonders/categories", status: http.StatusOK},
		{target: "/v0/wonders/time-periods", path: "/wonders/time-periods", status: http.StatusOK},
		{target: "/v0/wonders/sort-by", path: "/wonders/sort-by", status: http.StatusOK},
		{target: "/v0/wonders/random", path: "/wonders/random", status: http.StatusOK},
		{target: "/v0/wonders/oldest?time_period=Modern", path: "/wonders/oldest", status: http.StatusOK},
		{target: "/v0/wonders/youngest?upper_limit=-1000", path: "/wonders/youngest", status: http.StatusOK},
		{target: "/v0/wonders/youngest?lower_limit=30000", path: "/wonders/youngest", status: http.StatusBadRequest},
		{target: "/v0/wonders/name/great-pyramid-of-giza", path: "/wonders/name/{name}", status: http.StatusOK},
		{target: "/v0/wonders/name/nothing-here", path: "/wonders/name/{name}", status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			recorder := server.get(tt.target)
			require.Equal(t, tt.status, recorder.Code, recorder.Body.String())

			item := server.docs.Document().Paths.Find(tt.path)
			require.NotNil(t, item, tt.path)

			response := item.Get.Responses.Status(tt.status)
			require.NotNil(t, response)

			media := response.Value.Content.Get("application/json")
			require.NotNil(t, media)

			var body any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.NoError(t, media.Schema.Value.VisitJSON(body))
		})
	}
}
