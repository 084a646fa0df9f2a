// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses optional URL query parameter values.
//
// An empty string always means "not provided" and is never an error.
package query

import "strconv"

// Int16 parses a signed 16-bit integer. It returns nil when val is empty.
func Int16(val string) (*int16, error) {
	if val == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(val, 10, 16)
	if err != nil {
		return nil, err
	}
	result := int16(parsed)
	return &result, nil
}

// Bool parses a boolean flag. It returns false when val is empty.
func Bool(val string) (bool, error) {
	if val == "" {
		return false, nil
	}
	return strconv.ParseBool(val)
}
