// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

var (
	//go:embed data/wonders.json
	embeddedDataset []byte

	//go:embed data/wonders.schema.json
	embeddedSchema []byte
)

// # Dataset Store

// Catalog owns the validated wonder collection for the process lifetime.
//
// It is built once by [Load] and is immutable afterwards, which makes it safe
// to share between all request goroutines without locking.
type Catalog struct {
	wonders     []*Wonder
	byName      map[string]*Wonder
	fingerprint string
}

// Load parses and validates the dataset embedded in the binary.
//
// Any failure means the process must not serve traffic.
func Load() (*Catalog, error) {
	return LoadFrom(embeddedDataset, time.Now().Year())
}

// LoadFrom parses and validates a raw JSON dataset.
//
// currentYear bounds the allowed build years. Validation runs in two phases:
// the embedded JSON Schema first, then the cross-field rules in [checkDataset].
func LoadFrom(data []byte, currentYear int) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var wonders []*Wonder
	if err := decoder.Decode(&wonders); err != nil {
		return nil, fmt.Errorf("wonder: failed to decode dataset: %w", err)
	}

	if err := checkDataset(wonders, currentYear); err != nil {
		return nil, err
	}

	byName := make(map[string]*Wonder, len(wonders))
	for _, w := range wonders {
		byName[w.Name] = w
	}

	sum := sha256.Sum256(data)

	return &Catalog{
		wonders:     wonders,
		byName:      byName,
		fingerprint: hex.EncodeToString(sum[:]),
	}, nil
}

// All returns every wonder in source order.
func (catalog *Catalog) All() []*Wonder {
	return slices.Clone(catalog.wonders)
}

// Len returns the number of wonders in the catalogue.
func (catalog *Catalog) Len() int {
	return len(catalog.wonders)
}

// ByName returns the wonder with the exact name.
func (catalog *Catalog) ByName(name string) (*Wonder, bool) {
	w, ok := catalog.byName[name]
	return w, ok
}

// Fingerprint returns the hex SHA-256 of the raw dataset.
func (catalog *Catalog) Fingerprint() string {
	return catalog.fingerprint
}
