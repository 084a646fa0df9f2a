// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/taibuivan/worldwonders/pkg/slug"
)

const schemaResource = "wonders.schema.json"

// DatasetError lists every rule the dataset violates.
type DatasetError struct {
	Problems []string
}

func (e *DatasetError) Error() string {
	return fmt.Sprintf("wonder: invalid dataset (%d problems):\n  - %s", len(e.Problems), strings.Join(e.Problems, "\n  - "))
}

// # Structural Validation

// validateSchema checks data against the embedded JSON Schema.
func validateSchema(data []byte) error {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource(schemaResource, bytes.NewReader(embeddedSchema)); err != nil {
		return fmt.Errorf("wonder: failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(schemaResource)
	if err != nil {
		return fmt.Errorf("wonder: failed to compile schema: %w", err)
	}

	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return fmt.Errorf("wonder: dataset is not valid JSON: %w", err)
	}

	if err := schema.Validate(document); err != nil {
		validationErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return fmt.Errorf("wonder: schema validation failed: %w", err)
		}
		problems := make([]string, 0)
		collectSchemaErrors(validationErr, &problems)
		return &DatasetError{Problems: problems}
	}

	return nil
}

// collectSchemaErrors flattens the leaf causes of a schema validation error.
func collectSchemaErrors(err *jsonschema.ValidationError, problems *[]string) {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		*problems = append(*problems, fmt.Sprintf("%s: %s", location, err.Message))
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(cause, problems)
	}
}

// # Semantic Validation

// checkDataset enforces the cross-record and cross-field rules a schema can't express.
func checkDataset(wonders []*Wonder, currentYear int) error {
	checker := &datasetChecker{
		seenNames: make(map[string]bool),
		seenSlugs: make(map[string]bool),
		seenLinks: make(map[string]bool),
	}

	if len(wonders) == 0 {
		checker.add("dataset", "must contain at least one wonder")
	}

	for _, w := range wonders {
		checker.checkWonder(w, currentYear)
	}

	if len(checker.problems) > 0 {
		return &DatasetError{Problems: checker.problems}
	}
	return nil
}

type datasetChecker struct {
	problems  []string
	seenNames map[string]bool
	seenSlugs map[string]bool
	seenLinks map[string]bool
}

func (checker *datasetChecker) add(subject, format string, args ...any) {
	checker.problems = append(checker.problems, subject+": "+fmt.Sprintf(format, args...))
}

func (checker *datasetChecker) checkWonder(w *Wonder, currentYear int) {
	subject := fmt.Sprintf("%q", w.Name)

	// Identity
	if checker.seenNames[w.Name] {
		checker.add(subject, "duplicate name")
	}
	checker.seenNames[w.Name] = true

	key := slug.From(w.Name)
	if checker.seenSlugs[key] {
		checker.add(subject, "duplicate slug %q", key)
	}
	checker.seenSlugs[key] = true

	// Text hygiene
	checker.checkText(subject, "name", w.Name)
	checker.checkText(subject, "location", w.Location)
	checker.checkText(subject, "summary", w.Summary)

	if !strings.Contains(w.Location, ",") {
		checker.add(subject, "location must end with a continent: %q", w.Location)
	}
	if !strings.HasSuffix(w.Summary, ".") && !strings.HasSuffix(w.Summary, "!") {
		checker.add(subject, "summary must end with proper punctuation")
	}

	// Build year + time period
	if int(w.BuildYear) > currentYear {
		checker.add(subject, "build year %d exceeds current calendar year %d", w.BuildYear, currentYear)
	}
	if expected := DeriveTimePeriod(w.BuildYear); w.TimePeriod != expected {
		checker.add(subject, "time period %q does not match year %d, expected %q", w.TimePeriod, w.BuildYear, expected)
	}

	// Categories
	if len(w.Categories) == 0 {
		checker.add(subject, "must belong to at least one category")
	}
	seenCategories := make(map[Category]bool, len(w.Categories))
	for _, c := range w.Categories {
		if !c.IsValid() {
			checker.add(subject, "unknown category %q", c)
		}
		if seenCategories[c] {
			checker.add(subject, "duplicate category %q", c)
		}
		seenCategories[c] = true
	}

	checker.checkLinks(subject, w.Links)
}

// checkText rejects leading/trailing whitespace, non-space whitespace and double spaces.
func (checker *datasetChecker) checkText(subject, field, value string) {
	if strings.TrimSpace(value) != value {
		checker.add(subject, "%s has leading or trailing whitespace", field)
	}

	previousSpace := false
	for _, r := range value {
		if !unicode.IsSpace(r) {
			previousSpace = false
			continue
		}
		if r != ' ' {
			checker.add(subject, "%s contains non-space whitespace %q", field, r)
			return
		}
		if previousSpace {
			checker.add(subject, "%s contains consecutive spaces", field)
			return
		}
		previousSpace = true
	}
}

func (checker *datasetChecker) checkLinks(subject string, links Links) {
	checker.checkLink(subject, "wiki", links.Wiki, "https://en.wikipedia.org/wiki/", true)

	optional := []struct {
		slot   string
		value  *string
		prefix string
	}{
		{"britannica", links.Britannica, "https://www.britannica.com"},
		{"google_maps", links.GoogleMaps, "https://www.google.com/maps/place"},
		{"trip_advisor", links.TripAdvisor, "https://www.tripadvisor.com"},
	}
	for _, link := range optional {
		if link.value != nil {
			checker.checkLink(subject, link.slot, *link.value, link.prefix, false)
		}
	}

	if len(links.Images) < 2 {
		checker.add(subject, "needs at least 2 image links, has %d", len(links.Images))
	}
	for i, image := range links.Images {
		checker.checkLink(subject, fmt.Sprintf("images[%d]", i), image, "https", false)
	}
}

// checkLink validates a single URL slot. No link may target a fragment and
// only wiki links may carry a query string.
func (checker *datasetChecker) checkLink(subject, slot, link, prefix string, allowQuery bool) {
	if _, err := url.ParseRequestURI(link); err != nil {
		checker.add(subject, "%s is not a valid URL: %q", slot, link)
	}
	if !strings.HasPrefix(link, prefix) {
		checker.add(subject, "%s must start with %q: %q", slot, prefix, link)
	}
	if strings.Contains(link, "#") {
		checker.add(subject, "%s selects a page fragment: %q", slot, link)
	}
	if !allowQuery && strings.Contains(link, "?") {
		checker.add(subject, "%s passes query parameters: %q", slot, link)
	}
	if checker.seenLinks[link] {
		checker.add(subject, "duplicate link %q", link)
	}
	checker.seenLinks[link] = true
}
