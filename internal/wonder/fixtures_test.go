// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder_test

import (
	"github.com/taibuivan/worldwonders/internal/wonder"
)

// newWonder builds a minimal in-memory record for engine tests.
func newWonder(name, location string, year int16, categories ...wonder.Category) *wonder.Wonder {
	return &wonder.Wonder{
		Name:       name,
		Location:   location,
		BuildYear:  year,
		TimePeriod: wonder.DeriveTimePeriod(year),
		Categories: categories,
	}
}

// sampleWonders returns a small collection with a build year tie between
// Colossus and Lighthouse, in that order.
func sampleWonders() []*wonder.Wonder {
	return []*wonder.Wonder{
		newWonder("Great Pyramid of Giza", "Giza, Egypt, Africa", -2560, wonder.CategorySevenWonders, wonder.CategoryCiv5),
		newWonder("Colossus of Rhodes", "Rhodes, Greece, Europe", -280, wonder.CategorySevenWonders),
		newWonder("Lighthouse of Alexandria", "Alexandria, Egypt, Africa", -280, wonder.CategorySevenWonders, wonder.CategoryCiv6),
		newWonder("Taj Mahal", "Agra, India, Asia", 1653, wonder.CategorySevenNewWonders, wonder.CategoryCiv5),
		newWonder("Chichén Itzá", "Tinúm, Yucatán, Mexico, North America", 600, wonder.CategorySevenNewWonders),
		newWonder("Delta Works", "Zeeland, Netherlands, Europe", 1997, wonder.CategorySevenModernWonders),
	}
}

func names(wonders []*wonder.Wonder) []string {
	out := make([]string, 0, len(wonders))
	for _, w := range wonders {
		out = append(out, w.Name)
	}
	return out
}

func year(v int16) *int16 { return &v }
