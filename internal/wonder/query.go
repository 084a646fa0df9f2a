// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/taibuivan/worldwonders/pkg/slice"
)

// # Search & Filtering

// FilterSpec holds the optional predicates of a wonder query.
//
// Zero values mean "not set". All set predicates are AND-combined.
type FilterSpec struct {
	NameContains     string     `json:"name,omitempty"`        // Case-insensitive substring of Name
	LocationContains string     `json:"location,omitempty"`    // Case-insensitive substring of Location
	TimePeriod       TimePeriod `json:"time_period,omitempty"` // Exact match
	Category         Category   `json:"category,omitempty"`    // Set membership
	LowerLimit       *int16     `json:"lower_limit,omitempty"` // Inclusive lower build year bound
	UpperLimit       *int16     `json:"upper_limit,omitempty"` // Inclusive upper build year bound
}

// IsEmpty reports whether no predicate is set.
func (f FilterSpec) IsEmpty() bool {
	return f.NameContains == "" &&
		f.LocationContains == "" &&
		f.TimePeriod == "" &&
		f.Category == "" &&
		f.LowerLimit == nil &&
		f.UpperLimit == nil
}

// Key returns a canonical, order-stable encoding of the set predicates.
// Two specs selecting the same wonders with the same inputs share a key.
func (f FilterSpec) Key() string {
	if f.IsEmpty() {
		return "all"
	}

	parts := make([]string, 0, 6)
	if f.NameContains != "" {
		parts = append(parts, FieldName+"="+strconv.Quote(fold(f.NameContains)))
	}
	if f.LocationContains != "" {
		parts = append(parts, FieldLocation+"="+strconv.Quote(fold(f.LocationContains)))
	}
	if f.TimePeriod != "" {
		parts = append(parts, FieldTimePeriod+"="+string(f.TimePeriod))
	}
	if f.Category != "" {
		parts = append(parts, FieldCategory+"="+string(f.Category))
	}
	if f.LowerLimit != nil {
		parts = append(parts, FieldLowerLimit+"="+strconv.Itoa(int(*f.LowerLimit)))
	}
	if f.UpperLimit != nil {
		parts = append(parts, FieldUpperLimit+"="+strconv.Itoa(int(*f.UpperLimit)))
	}
	return strings.Join(parts, "&")
}

// SortSpec selects the ordering applied by [Sort].
//
// Reverse has no effect unless By is set.
type SortSpec struct {
	By      SortBy `json:"sort_by,omitempty"`
	Reverse bool   `json:"sort_reverse,omitempty"`
}

// # Filtering

// Filter returns the wonders matching every predicate of spec, in input order.
//
// A lower bound greater than the upper bound fails with [*ConflictingLimitsError]
// before any wonder is inspected. An empty result fails with [ErrNoWondersLeft].
func Filter(wonders []*Wonder, spec FilterSpec) ([]*Wonder, error) {
	if spec.LowerLimit != nil && spec.UpperLimit != nil && *spec.LowerLimit > *spec.UpperLimit {
		return nil, &ConflictingLimitsError{Lower: *spec.LowerLimit, Upper: *spec.UpperLimit}
	}

	match := predicate(spec)
	result := slice.Filter(wonders, match)

	if len(result) == 0 {
		return result, ErrNoWondersLeft
	}
	return result, nil
}

// FilterLenient behaves like [Filter] but treats an empty result as a valid answer.
//
// Only [ErrNoWondersLeft] is absorbed; conflicting limits still fail.
func FilterLenient(wonders []*Wonder, spec FilterSpec) ([]*Wonder, error) {
	result, err := Filter(wonders, spec)
	if errors.Is(err, ErrNoWondersLeft) {
		return result, nil
	}
	return result, err
}

// predicate compiles spec into a single AND-combined match function.
func predicate(spec FilterSpec) func(*Wonder) bool {
	name := fold(spec.NameContains)
	location := fold(spec.LocationContains)

	return func(w *Wonder) bool {
		if name != "" && !strings.Contains(fold(w.Name), name) {
			return false
		}
		if location != "" && !strings.Contains(fold(w.Location), location) {
			return false
		}
		if spec.TimePeriod != "" && w.TimePeriod != spec.TimePeriod {
			return false
		}
		if spec.Category != "" && !w.HasCategory(spec.Category) {
			return false
		}
		if spec.LowerLimit != nil && w.BuildYear < *spec.LowerLimit {
			return false
		}
		if spec.UpperLimit != nil && w.BuildYear > *spec.UpperLimit {
			return false
		}
		return true
	}
}

// fold applies full Unicode case folding so that matching ignores case.
//
// A new Caser is created per call because Casers are stateful and must not
// be shared between goroutines.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(s)
}

// # Sorting

// Sort returns a sorted copy of wonders. The input slice is never modified.
//
// Sorting is stable. When spec.Reverse is set the ascending result is
// reversed as a final step, so equal keys appear in reverse input order.
func Sort(wonders []*Wonder, spec SortSpec) []*Wonder {
	result := slices.Clone(wonders)
	if result == nil {
		result = make([]*Wonder, 0)
	}

	switch spec.By {
	case SortByBuildYear:
		slices.SortStableFunc(result, func(a, b *Wonder) int {
			return cmp.Compare(a.BuildYear, b.BuildYear)
		})
	case SortByAlphabetical:
		slices.SortStableFunc(result, func(a, b *Wonder) int {
			return strings.Compare(a.Name, b.Name)
		})
	default:
		return result
	}

	if spec.Reverse {
		slices.Reverse(result)
	}
	return result
}
