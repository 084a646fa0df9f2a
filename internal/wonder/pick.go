// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

import (
	"math/rand/v2"

	"github.com/taibuivan/worldwonders/pkg/slug"
)

// # Selection

// Oldest returns the wonder with the smallest build year.
// Ties resolve to the first such wonder in input order.
func Oldest(wonders []*Wonder) (*Wonder, error) {
	return extreme(wonders, func(candidate, best *Wonder) bool {
		return candidate.BuildYear < best.BuildYear
	})
}

// Youngest returns the wonder with the largest build year.
// Ties resolve to the first such wonder in input order.
func Youngest(wonders []*Wonder) (*Wonder, error) {
	return extreme(wonders, func(candidate, best *Wonder) bool {
		return candidate.BuildYear > best.BuildYear
	})
}

// extreme scans wonders once, replacing the current best only on a strict improvement.
func extreme(wonders []*Wonder, better func(candidate, best *Wonder) bool) (*Wonder, error) {
	if len(wonders) == 0 {
		return nil, ErrNoWondersLeft
	}

	best := wonders[0]
	for _, candidate := range wonders[1:] {
		if better(candidate, best) {
			best = candidate
		}
	}
	return best, nil
}

// Random returns a uniformly selected wonder.
//
// intN must return a value in [0, n). When nil, the process-wide
// math/rand/v2 source is used, which is safe for concurrent callers.
func Random(wonders []*Wonder, intN func(n int) int) (*Wonder, error) {
	if len(wonders) == 0 {
		return nil, ErrNoWondersLeft
	}
	if intN == nil {
		intN = rand.IntN
	}
	return wonders[intN(len(wonders))], nil
}

// # Lookup

// FindBySlug returns the wonder whose name, lowercased with spaces replaced
// by hyphens, equals the requested slug exactly.
func FindBySlug(wonders []*Wonder, requested string) (*Wonder, error) {
	key := slug.Normalize(requested)
	for _, w := range wonders {
		if slug.From(w.Name) == key {
			return w, nil
		}
	}
	return nil, &NoMatchingNameError{Slug: requested}
}
