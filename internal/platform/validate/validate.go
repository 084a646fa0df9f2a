// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package validate checks query parameters before they reach the query engine.

A [Validator] records at most one failure per field, in the order fields were
checked, and folds them into a single VALIDATION_ERROR:

	v := &validate.Validator{}
	lower := v.Int16("lower_limit", values.Get("lower_limit"))
	v.OneOf("category", raw, "Civ5", "Civ6")
	if err := v.Err(); err != nil {
	    respond.Error(writer, request, err)
	    return
	}
*/
package validate

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/worldwonders/internal/platform/apperr"
	"github.com/taibuivan/worldwonders/pkg/query"
)

// Validator accumulates field failures for one request. It is not safe for concurrent use.
type Validator struct {
	errs []apperr.FieldError
}

// # Rules

// MaxLen fails when value has more than max Unicode characters.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.fail(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// OneOf fails unless value is exactly one of allowed.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	if !slices.Contains(allowed, value) {
		v.fail(field, "Must be one of: "+strings.Join(allowed, ", "))
	}
	return v
}

// Custom fails with message when failed is true.
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.fail(field, message)
	}
	return v
}

// # Typed Parsers

// Int16 parses an optional signed 16-bit integer. Empty input yields nil.
func (v *Validator) Int16(field, raw string) *int16 {
	value, err := query.Int16(raw)
	v.Custom(field, err != nil, fmt.Sprintf("Must be an integer between %d and %d", math.MinInt16, math.MaxInt16))
	return value
}

// Bool parses an optional "true"/"false" flag. Empty input yields false.
func (v *Validator) Bool(field, raw string) bool {
	value, err := query.Bool(raw)
	v.Custom(field, err != nil, "Must be true or false")
	return value
}

// # Output

// HasErrors reports whether any rule failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Err returns a VALIDATION_ERROR [apperr.AppError] carrying every failure, or nil.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", slices.Clone(v.errs)...)
}

// fail keeps only the first failure reported for field.
func (v *Validator) fail(field, message string) {
	if slices.ContainsFunc(v.errs, func(e apperr.FieldError) bool { return e.Field == field }) {
		return
	}
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
