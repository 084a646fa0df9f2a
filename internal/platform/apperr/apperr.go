// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error type every handler returns to the client.

An [AppError] pairs an HTTP status with a stable machine-readable code and a
message that is safe to show. Engine errors are translated into AppErrors at
the transport boundary; anything else reaching the respond package is
rendered as INTERNAL_ERROR.

Codes owned by this package:

	NOT_FOUND         404  unknown route
	VALIDATION_ERROR  400  malformed query parameters, with per-field details
	RATE_LIMITED      429  client exceeded its token bucket
	INTERNAL_ERROR    500  anything unexpected

Domain packages add their own 400 codes through [BadRequest].
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Codes produced by the constructors below.
const (
	CodeNotFound    = "NOT_FOUND"
	CodeValidation  = "VALIDATION_ERROR"
	CodeRateLimited = "RATE_LIMITED"
	CodeInternal    = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the API.
//
// Cause is for server-side logging only and is never serialised.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is one rejected query parameter.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes Cause to [errors.Is] and [errors.As].
func (e *AppError) Unwrap() error { return e.Cause }

// New creates an [AppError] with an arbitrary status and code.
func New(status int, code, msg string) *AppError {
	return &AppError{Code: code, Message: msg, HTTPStatus: status}
}

// # Client Errors (4xx)

// BadRequest creates a 400 with a caller-chosen code, e.g. "NO_WONDERS_LEFT".
func BadRequest(code, msg string) *AppError {
	return New(http.StatusBadRequest, code, msg)
}

// NotFound creates a 404 NOT_FOUND.
func NotFound(msg string) *AppError {
	return New(http.StatusNotFound, CodeNotFound, msg)
}

// ValidationError creates a 400 VALIDATION_ERROR carrying per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	err := New(http.StatusBadRequest, CodeValidation, msg)
	err.Details = details
	return err
}

// RateLimited creates a 429 RATE_LIMITED telling the client when to retry.
func RateLimited(retryAfter time.Duration) *AppError {
	return New(http.StatusTooManyRequests, CodeRateLimited,
		fmt.Sprintf("Too many requests. Try again in %s.", retryAfter))
}

// # Server Errors (5xx)

// Internal creates a 500 INTERNAL_ERROR. cause is kept for logs only.
func Internal(cause error) *AppError {
	err := New(http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
	err.Cause = cause
	return err
}

// # Helpers

// IsAppError reports whether err's chain contains an [*AppError].
func IsAppError(err error) bool {
	return As(err) != nil
}

// As returns the first [*AppError] in err's chain, or nil.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
