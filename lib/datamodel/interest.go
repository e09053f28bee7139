// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package datamodel

// AreaOfInterest combines an Area with store-relative limits, for
// callers that want "the newest Entries of this Area" rather than all
// of them — e.g. a space-constrained peer asking for the 100 newest
// Entries when synchronising.
//
// The limits are interpreted against the contents of a store, not
// against the Area alone, so evaluation lives with the storage
// collaborator (lib/store's QueryInterest); this package only defines
// the value.
type AreaOfInterest[S Comparable[S]] struct {
	// Area bounds which Entries qualify at all.
	Area Area[S]

	// MaxCount admits only the MaxCount newest qualifying Entries.
	// Zero means unlimited.
	MaxCount uint64

	// MaxSize admits a qualifying Entry only if the payload lengths of
	// it and all newer qualifying Entries sum to at most MaxSize.
	// Zero means unlimited.
	MaxSize uint64
}
