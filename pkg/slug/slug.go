// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives URL lookup keys from wonder names.
//
// # Format
//
// A slug is the name in Unicode NFC form, lowercased, with every space
// replaced by a hyphen ("Great Pyramid of Giza" → "great-pyramid-of-giza").
// Punctuation and accents are kept as-is, so the mapping stays reversible
// enough for humans to type and for lookups to be an exact comparison.
package slug

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// From converts a display name into its lookup slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC so precomposed and decomposed accents compare equal.
// 2. Converts to lowercase.
// 3. Replaces each space with a hyphen.
func From(s string) string {
	result := norm.NFC.String(s)
	result = strings.ToLower(result)
	return strings.ReplaceAll(result, " ", "-")
}

// Normalize prepares a client-supplied slug for comparison against [From]
// output. Only the NFC step is applied; case is significant in lookups.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
