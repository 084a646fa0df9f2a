// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/taibuivan/worldwonders/internal/platform/apperr"
	"github.com/taibuivan/worldwonders/internal/platform/ctxutil"
	"github.com/taibuivan/worldwonders/internal/platform/respond"
)

// # Reliability & Safety

// PanicRecovery turns a handler panic into a logged 500 INTERNAL_ERROR.
//
// [http.ErrAbortHandler] is re-raised so net/http can abort the connection.
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(recovered)
				}

				reqLogger := ctxutil.GetLogger(request.Context())
				if reqLogger == slog.Default() {
					reqLogger = logger
				}
				reqLogger.ErrorContext(request.Context(), "panic_recovered",
					slog.Any("error", recovered),
					slog.String("stack", string(debug.Stack())),
				)

				respond.Error(writer, request, apperr.Internal(nil))
			}()

			next.ServeHTTP(writer, request)
		})
	}
}
