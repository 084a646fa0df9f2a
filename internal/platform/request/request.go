// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package requestutil reads routing values from incoming requests so domain
// handlers do not depend on chi's context layout.
package requestutil

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// Param returns the decoded value of the path parameter name, or "" when the
// request was not routed by chi or the route has no such parameter.
//
// chi matches against the escaped path when one is set, so percent-encoded
// segments such as "st.-basil%27s-cathedral" arrive undecoded. A value that
// is not valid percent-encoding is returned verbatim.
func Param(request *http.Request, name string) string {
	routeContext := chi.RouteContext(request.Context())
	if routeContext == nil {
		return ""
	}

	raw := routeContext.URLParam(name)
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
