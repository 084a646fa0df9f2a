// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	requestutil "github.com/taibuivan/worldwonders/internal/platform/request"
)

/*
TestParam verifies plain and percent-encoded path parameters are returned decoded.
*/
func TestParam(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"plain", "/name/alhambra", "alhambra"},
		{"escaped_quote", "/name/st.-basil%27s-cathedral", "st.-basil's-cathedral"},
		{"escaped_unicode", "/name/chich%C3%A9n-itz%C3%A1", "chichén-itzá"},
		{"escaped_space", "/name/great%20wall", "great wall"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			router := chi.NewRouter()
			router.Get("/name/{name}", func(writer http.ResponseWriter, request *http.Request) {
				got = requestutil.Param(request, "name")
			})

			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestParam_Unrouted verifies requests outside chi yield an empty value.
*/
func TestParam_Unrouted(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/name/alhambra", nil)
	assert.Empty(t, requestutil.Param(request, "name"))
}
