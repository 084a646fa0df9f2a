// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package respond writes every API response in one of two JSON envelopes:

	{"data": ...}
	{"error": "...", "code": "...", "details": [...]}

Payloads are encoded before the status line is written, so an encoding
failure still produces a well-formed INTERNAL_ERROR.
*/
package respond

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/worldwonders/internal/platform/apperr"
	"github.com/taibuivan/worldwonders/internal/platform/ctxutil"
)

const contentTypeJSON = "application/json; charset=utf-8"

// fallbackBody is written when a payload cannot be encoded.
var fallbackBody = []byte(`{"error":"An unexpected error occurred","code":"` + apperr.CodeInternal + `"}` + "\n")

// SuccessEnvelope wraps successful payloads.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ErrorEnvelope wraps failures.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// # Success

// OK writes data with 200.
func OK(writer http.ResponseWriter, data any) {
	Status(writer, http.StatusOK, data)
}

// Status writes data in the success envelope with statusCode.
func Status(writer http.ResponseWriter, statusCode int, data any) {
	JSON(writer, statusCode, SuccessEnvelope{Data: data})
}

// JSON writes payload as-is with statusCode.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		slog.Default().Error("response_encode_failed", slog.Any("error", err))
		write(writer, http.StatusInternalServerError, fallbackBody)
		return
	}
	write(writer, statusCode, body.Bytes())
}

// # Failure

// Error renders err in the error envelope.
//
// Errors that are not an [apperr.AppError] become INTERNAL_ERROR and their
// text is logged, never sent. Every 5xx is logged with the request ID.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	appError := apperr.As(err)
	if appError == nil {
		logger.ErrorContext(ctx, "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}

func write(writer http.ResponseWriter, statusCode int, body []byte) {
	writer.Header().Set("Content-Type", contentTypeJSON)
	writer.WriteHeader(statusCode)
	_, _ = writer.Write(body)
}
