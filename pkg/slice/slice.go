// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slice holds the generic helpers the standard [slices] package lacks.
package slice

// Map returns transform applied to every element. A nil input yields nil.
func Map[T, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}
	out := make([]U, 0, len(input))
	for _, v := range input {
		out = append(out, transform(v))
	}
	return out
}

// Filter returns the elements accepted by keep, in input order.
//
// The result is a fresh non-nil slice, so JSON encoders render no match as [].
func Filter[T any](input []T, keep func(T) bool) []T {
	out := []T{}
	for _, v := range input {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Strings converts a slice of a string-based type, such as an enum, to []string.
func Strings[S ~string](input []S) []string {
	return Map(input, func(s S) string { return string(s) })
}
