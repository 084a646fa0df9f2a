// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/worldwonders/internal/platform/apperr"
)

/*
TestConstructors checks the status and code of every constructor.
*/
func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		status int
		code   string
	}{
		{"bad_request", apperr.BadRequest("NO_WONDERS_LEFT", "empty"), http.StatusBadRequest, "NO_WONDERS_LEFT"},
		{"not_found", apperr.NotFound("missing"), http.StatusNotFound, "NOT_FOUND"},
		{"validation", apperr.ValidationError("bad"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"rate_limited", apperr.RateLimited(200 * time.Millisecond), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"internal", apperr.Internal(errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

/*
TestInternal_HidesCause verifies the cause stays out of the client message but remains unwrappable.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("dataset exploded")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "exploded")
	assert.ErrorIs(t, err, cause)
}

/*
TestAs extracts an AppError through a wrapping chain.
*/
func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", apperr.BadRequest("X", "y"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "X", ae.Code)
	assert.True(t, apperr.IsAppError(wrapped))

	assert.Nil(t, apperr.As(errors.New("plain")))
	assert.False(t, apperr.IsAppError(errors.New("plain")))
}

/*
TestNew keeps the given status and code and starts without details.
*/
func TestNew(t *testing.T) {
	err := apperr.New(http.StatusTeapot, "TEAPOT", "short and stout")

	assert.Equal(t, http.StatusTeapot, err.HTTPStatus)
	assert.Equal(t, "TEAPOT", err.Code)
	assert.Equal(t, "short and stout", err.Error())
	assert.Nil(t, err.Details)
	assert.NoError(t, err.Unwrap())
}

/*
TestValidationError_Details keeps field failures in order.
*/
func TestValidationError_Details(t *testing.T) {
	err := apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "lower_limit", Message: "a"},
		apperr.FieldError{Field: "category", Message: "b"},
	)

	require.Len(t, err.Details, 2)
	assert.Equal(t, "lower_limit", err.Details[0].Field)
	assert.Equal(t, apperr.CodeValidation, err.Code)
}
