// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

// # Time Periods

// TimePeriod is the human history period a wonder's completion falls into.
type TimePeriod string

const (
	TimePeriodPrehistoric   TimePeriod = "Prehistoric"
	TimePeriodAncient       TimePeriod = "Ancient"
	TimePeriodClassical     TimePeriod = "Classical"
	TimePeriodPostClassical TimePeriod = "PostClassical"
	TimePeriodEarlyModern   TimePeriod = "EarlyModern"
	TimePeriodModern        TimePeriod = "Modern"
)

// TimePeriods lists every [TimePeriod] in chronological order.
func TimePeriods() []TimePeriod {
	return []TimePeriod{
		TimePeriodPrehistoric,
		TimePeriodAncient,
		TimePeriodClassical,
		TimePeriodPostClassical,
		TimePeriodEarlyModern,
		TimePeriodModern,
	}
}

// IsValid reports whether p is a recognised [TimePeriod] value.
func (p TimePeriod) IsValid() bool {
	switch p {
	case
		TimePeriodPrehistoric,
		TimePeriodAncient,
		TimePeriodClassical,
		TimePeriodPostClassical,
		TimePeriodEarlyModern,
		TimePeriodModern:
		return true
	}
	return false
}

// DeriveTimePeriod maps a signed build year (negative = BCE) onto its [TimePeriod].
//
// Break points follow https://en.wikipedia.org/wiki/Human_history:
//
//	year <= -3000    Prehistoric
//	-2999 .. -800    Ancient
//	-799  .. 500     Classical
//	501   .. 1500    PostClassical
//	1501  .. 1800    EarlyModern
//	year >= 1801     Modern
func DeriveTimePeriod(year int16) TimePeriod {
	switch {
	case year <= -3000:
		return TimePeriodPrehistoric
	case year <= -800:
		return TimePeriodAncient
	case year <= 500:
		return TimePeriodClassical
	case year <= 1500:
		return TimePeriodPostClassical
	case year <= 1800:
		return TimePeriodEarlyModern
	default:
		return TimePeriodModern
	}
}

// # Categories

// Category is a membership set a wonder can belong to.
type Category string

const (
	// CategorySevenWonders marks the "7 Wonders of the Ancient World".
	CategorySevenWonders Category = "SevenWonders"

	// CategorySevenModernWonders marks the "7 Wonders of the Modern World"
	// elected by the American Society of Civil Engineers in 1994.
	CategorySevenModernWonders Category = "SevenModernWonders"

	// CategorySevenNewWonders marks the "New 7 Wonders of the World" elected
	// by online vote through the New7Wonders Foundation.
	CategorySevenNewWonders Category = "SevenNewWonders"

	// CategoryCiv5 marks wonders found in the video game "Civilization V".
	CategoryCiv5 Category = "Civ5"

	// CategoryCiv6 marks wonders found in the video game "Civilization VI".
	CategoryCiv6 Category = "Civ6"
)

// Categories lists every [Category]. Game franchise tags are dropped when
// excludeGames is true.
func Categories(excludeGames bool) []Category {
	all := []Category{
		CategorySevenWonders,
		CategorySevenModernWonders,
		CategorySevenNewWonders,
		CategoryCiv5,
		CategoryCiv6,
	}
	if !excludeGames {
		return all
	}

	result := make([]Category, 0, len(all))
	for _, c := range all {
		if !c.IsGame() {
			result = append(result, c)
		}
	}
	return result
}

// IsValid reports whether c is a recognised [Category] value.
func (c Category) IsValid() bool {
	switch c {
	case
		CategorySevenWonders,
		CategorySevenModernWonders,
		CategorySevenNewWonders,
		CategoryCiv5,
		CategoryCiv6:
		return true
	}
	return false
}

// IsGame reports whether c is a video game franchise tag.
func (c Category) IsGame() bool {
	switch c {
	case CategoryCiv5, CategoryCiv6:
		return true
	case CategorySevenWonders, CategorySevenModernWonders, CategorySevenNewWonders:
		return false
	}
	return false
}

// # Sort Options

// SortBy selects the key used by [Sort].
type SortBy string

const (
	SortByBuildYear    SortBy = "BuildYear"
	SortByAlphabetical SortBy = "Alphabetical"
)

// SortOptions lists every [SortBy] value.
func SortOptions() []SortBy {
	return []SortBy{SortByBuildYear, SortByAlphabetical}
}

// IsValid reports whether s is a recognised [SortBy] value.
func (s SortBy) IsValid() bool {
	switch s {
	case SortByBuildYear, SortByAlphabetical:
		return true
	}
	return false
}

