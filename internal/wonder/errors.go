// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

import (
	"errors"
	"fmt"
)

// # Query Errors
//
// Every query error is caused by client input. The engine returns them as-is
// and the transport layer decides how they are rendered.

// ErrNoWondersLeft is returned when a strict filter or a pick operation ends
// up with an empty candidate set.
var ErrNoWondersLeft = errors.New("No wonder matching the given filters was found")

// NoMatchingNameError is returned by [FindBySlug] when no wonder has the requested slug.
type NoMatchingNameError struct {
	Slug string
}

func (e *NoMatchingNameError) Error() string {
	return fmt.Sprintf("No wonder found matching the name '%s'", e.Slug)
}

// ConflictingLimitsError is returned when the lower build year bound exceeds the upper one.
type ConflictingLimitsError struct {
	Lower int16
	Upper int16
}

func (e *ConflictingLimitsError) Error() string {
	return fmt.Sprintf("The provided lower limit of %d is greater than the provided upper limit of %d", e.Lower, e.Upper)
}
