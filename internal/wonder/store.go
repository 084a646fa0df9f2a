// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package wonder

// Repository is the read-only view over the wonder collection.
//
// Implementations must be safe for concurrent use and must never mutate the
// wonders they hand out.
type Repository interface {
	// All returns every wonder in source order. The slice is fresh; the wonders are shared.
	All() []*Wonder

	// ByName returns the wonder with the exact (case-sensitive) name.
	ByName(name string) (*Wonder, bool)

	// Fingerprint identifies the loaded dataset revision.
	Fingerprint() string
}
