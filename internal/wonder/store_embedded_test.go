// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/worldwonders/internal/wonder"
	"github.com/taibuivan/worldwonders/pkg/slug"
)

const testYear = 2026

// validRecord returns a JSON-shaped wonder that passes every load rule.
func validRecord(name string, buildYear int) map[string]any {
	key := strings.ReplaceAll(name, " ", "_")
	return map[string]any{
		"name":        name,
		"summary":     "A made-up landmark used to exercise the dataset loader in unit tests.",
		"location":    "Testville, Testland, Europe",
		"build_year":  buildYear,
		"time_period": string(wonder.DeriveTimePeriod(int16(buildYear))),
		"links": map[string]any{
			"wiki":   "https://en.wikipedia.org/wiki/" + key,
			"images": []any{"https://img.example/" + key + "/1.jpg", "https://img.example/" + key + "/2.jpg"},
		},
		"categories": []any{"Civ5"},
	}
}

func encode(t *testing.T, records ...map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(records)
	require.NoError(t, err)
	return data
}

/*
TestLoad_Embedded verifies the shipped dataset satisfies every rule.
*/
func TestLoad_Embedded(t *testing.T) {
	catalog, err := wonder.Load()
	require.NoError(t, err)

	all := catalog.All()
	assert.Equal(t, catalog.Len(), len(all))
	assert.Len(t, catalog.Fingerprint(), 64)

	ancient, err := wonder.Filter(all, wonder.FilterSpec{Category: wonder.CategorySevenWonders})
	require.NoError(t, err)
	assert.Len(t, ancient, 7)

	for _, w := range all {
		assert.Equal(t, wonder.DeriveTimePeriod(w.BuildYear), w.TimePeriod, w.Name)

		found, err := wonder.FindBySlug(all, slug.From(w.Name))
		require.NoError(t, err, w.Name)
		assert.Same(t, w, found)

		byName, ok := catalog.ByName(w.Name)
		require.True(t, ok)
		assert.Same(t, w, byName)
	}

	covered := make(map[string]bool, len(all))
	for _, category := range wonder.Categories(false) {
		members, err := wonder.FilterLenient(all, wonder.FilterSpec{Category: category})
		require.NoError(t, err)
		for _, w := range members {
			assert.True(t, w.HasCategory(category))
			covered[w.Name] = true
		}
	}
	assert.Len(t, covered, len(all), "every wonder belongs to a known category")

	oldest, err := wonder.Oldest(all)
	require.NoError(t, err)
	youngest, err := wonder.Youngest(all)
	require.NoError(t, err)
	assert.LessOrEqual(t, oldest.BuildYear, youngest.BuildYear)
	assert.Equal(t, "Stonehenge", oldest.Name)
	assert.Equal(t, "Delta Works", youngest.Name)
}

/*
TestCatalog_AllReturnsCopy verifies callers cannot reorder the catalogue.
*/
func TestCatalog_AllReturnsCopy(t *testing.T) {
	catalog, err := wonder.LoadFrom(encode(t, validRecord("First One", 100), validRecord("Second One", 200)), testYear)
	require.NoError(t, err)

	first := catalog.All()
	first[0], first[1] = first[1], first[0]

	assert.Equal(t, []string{"First One", "Second One"}, names(catalog.All()))

	_, ok := catalog.ByName("first one")
	assert.False(t, ok, "ByName is case-sensitive")
}

/*
TestLoadFrom_Fingerprint verifies the fingerprint follows the raw bytes.
*/
func TestLoadFrom_Fingerprint(t *testing.T) {
	a, err := wonder.LoadFrom(encode(t, validRecord("Alpha Site", 100)), testYear)
	require.NoError(t, err)
	b, err := wonder.LoadFrom(encode(t, validRecord("Beta Site", 100)), testYear)
	require.NoError(t, err)

	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

/*
TestLoadFrom_Rejects covers the structural and semantic load rules.
*/
func TestLoadFrom_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(records []map[string]any) []map[string]any
		problem string
	}{
		{
			name:    "empty_collection",
			mutate:  func([]map[string]any) []map[string]any { return []map[string]any{} },
			problem: "",
		},
		{
			name: "unknown_category",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["categories"] = []any{"Civ7"}
				return r
			},
			problem: "/0/categories/0",
		},
		{
			name: "summary_too_short",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["summary"] = "Too short."
				return r
			},
			problem: "/0/summary",
		},
		{
			name: "one_image",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["links"].(map[string]any)["images"] = []any{"https://img.example/only.jpg"}
				return r
			},
			problem: "/0/links/images",
		},
		{
			name: "unexpected_field",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["height"] = 10
				return r
			},
			problem: "/0",
		},
		{
			name: "duplicate_name",
			mutate: func(r []map[string]any) []map[string]any {
				r[1]["name"] = r[0]["name"]
				return r
			},
			problem: "duplicate name",
		},
		{
			name: "duplicate_slug",
			mutate: func(r []map[string]any) []map[string]any {
				r[1]["name"] = "first one"
				return r
			},
			problem: "duplicate slug",
		},
		{
			name: "double_space",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["location"] = "Testville,  Testland, Europe"
				return r
			},
			problem: "consecutive spaces",
		},
		{
			name: "tab_in_name",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["name"] = "First\tOne"
				return r
			},
			problem: "non-space whitespace",
		},
		{
			name: "trailing_whitespace",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["summary"] = "A made-up landmark used to exercise the dataset loader in unit tests. "
				return r
			},
			problem: "leading or trailing whitespace",
		},
		{
			name: "location_without_continent",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["location"] = "Testville"
				return r
			},
			problem: "continent",
		},
		{
			name: "summary_without_punctuation",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["summary"] = "A made-up landmark used to exercise the dataset loader in unit tests"
				return r
			},
			problem: "punctuation",
		},
		{
			name: "future_build_year",
			mutate: func(r []map[string]any) []map[string]any {
				r[0] = validRecord("First One", testYear+1)
				return r
			},
			problem: "exceeds current calendar year",
		},
		{
			name: "mismatched_time_period",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["time_period"] = "Modern"
				return r
			},
			problem: "does not match year",
		},
		{
			name: "duplicate_category",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["categories"] = []any{"Civ5", "Civ5"}
				return r
			},
			problem: "/0/categories",
		},
		{
			name: "fragment_link",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["links"].(map[string]any)["wiki"] = "https://en.wikipedia.org/wiki/First_One#History"
				return r
			},
			problem: "fragment",
		},
		{
			name: "query_in_optional_link",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["links"].(map[string]any)["britannica"] = "https://www.britannica.com/place/First?ref=x"
				return r
			},
			problem: "query parameters",
		},
		{
			name: "wrong_prefix",
			mutate: func(r []map[string]any) []map[string]any {
				r[0]["links"].(map[string]any)["trip_advisor"] = "https://www.example.com/first"
				return r
			},
			problem: "/0/links/trip_advisor",
		},
		{
			name: "shared_link",
			mutate: func(r []map[string]any) []map[string]any {
				r[1]["links"].(map[string]any)["wiki"] = r[0]["links"].(map[string]any)["wiki"]
				return r
			},
			problem: "duplicate link",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := tt.mutate([]map[string]any{validRecord("First One", 100), validRecord("Second One", 200)})

			catalog, err := wonder.LoadFrom(encode(t, records...), testYear)
			require.Error(t, err)
			assert.Nil(t, catalog)

			var datasetErr *wonder.DatasetError
			require.ErrorAs(t, err, &datasetErr)
			require.NotEmpty(t, datasetErr.Problems)
			assert.Contains(t, err.Error(), tt.problem)
		})
	}
}

/*
TestLoadFrom_CollectsAllProblems verifies every violation is reported at once.
*/
func TestLoadFrom_CollectsAllProblems(t *testing.T) {
	first := validRecord("First One", 100)
	first["location"] = "Nowhere"
	second := validRecord("Second One", 200)
	second["time_period"] = "Prehistoric"

	_, err := wonder.LoadFrom(encode(t, first, second), testYear)

	var datasetErr *wonder.DatasetError
	require.ErrorAs(t, err, &datasetErr)
	assert.Len(t, datasetErr.Problems, 2)
}

/*
TestLoadFrom_MalformedJSON verifies a syntax error fails loading.
*/
func TestLoadFrom_MalformedJSON(t *testing.T) {
	_, err := wonder.LoadFrom([]byte(`[{"name":`), testYear)
	assert.Error(t, err)
}
