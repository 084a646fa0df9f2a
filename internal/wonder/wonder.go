// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package wonder defines the world wonder catalogue and the query engine that
runs over it.

The catalogue is a fixed dataset embedded in the binary. It is parsed and
validated once at startup into a [Catalog] and never mutated afterwards, so
every request reads the same shared records without locking.

Core Responsibility:

  - Model: Wonder, Links and the closed enumerations (Category, TimePeriod, SortBy).
  - Store: Loading and validating the embedded dataset ([Load], [Catalog]).
  - Engine: Pure filter/sort/pick functions ([Filter], [Sort], [Oldest], ...).
  - Transport: The [Service] and HTTP [Handler] sitting on top of the engine.
*/
package wonder

// # Core Entities

// Wonder is one catalogue record describing a historical or contemporary landmark.
//
// Wonders are shared by every request once loaded. Callers must treat the
// struct and its slices as read-only.
type Wonder struct {
	Name       string     `json:"name"`
	Summary    string     `json:"summary"`
	Location   string     `json:"location"`   // Free text ending in the continent, e.g. "Giza, Egypt, Africa"
	BuildYear  int16      `json:"build_year"` // Negative values are BCE
	TimePeriod TimePeriod `json:"time_period"`
	Links      Links      `json:"links"`
	Categories []Category `json:"categories"`
}

// Links bundles the reference URLs attached to a [Wonder].
type Links struct {
	Wiki        string   `json:"wiki"`
	Britannica  *string  `json:"britannica"`
	GoogleMaps  *string  `json:"google_maps"`
	TripAdvisor *string  `json:"trip_advisor"`
	Images      []string `json:"images"`
}

// HasCategory reports whether the wonder is a member of category c.
func (w *Wonder) HasCategory(c Category) bool {
	for _, own := range w.Categories {
		if own == c {
			return true
		}
	}
	return false
}

// # Field Identifiers

// Query parameter names shared by the HTTP layer, CLI flags and validation details.
const (
	FieldName         = "name"
	FieldLocation     = "location"
	FieldTimePeriod   = "time_period"
	FieldCategory     = "category"
	FieldLowerLimit   = "lower_limit"
	FieldUpperLimit   = "upper_limit"
	FieldSortBy       = "sort_by"
	FieldSortReverse  = "sort_reverse"
	FieldExcludeGames = "exclude_games"
)
