// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package datamodel

import "fmt"

// Range is an inclusive-exclusive interval of Timestamps: a value is
// included if Start <= value, and value < End unless the range is
// open. The zero value is the empty range [0, 0).
//
// Ranges are well-formed by construction: NewRange clamps an inverted
// interval to the empty range at Start, so Start <= End always holds
// for closed ranges.
type Range struct {
	// Start is the least included Timestamp.
	Start Timestamp

	// End is the exclusive upper bound. Meaningful only when Open is
	// false.
	End Timestamp

	// Open marks a range with no upper bound.
	Open bool
}

// NewRange returns the closed range [start, end). An inverted interval
// (end < start) yields the empty range [start, start).
func NewRange(start, end Timestamp) Range {
	if end < start {
		end = start
	}
	return Range{Start: start, End: end}
}

// NewOpenRange returns the range of all Timestamps >= start.
func NewOpenRange(start Timestamp) Range {
	return Range{Start: start, Open: true}
}

// EmptyRange returns the canonical empty range [0, 0).
func EmptyRange() Range { return Range{} }

// FullRange returns the range including every Timestamp.
func FullRange() Range { return Range{Open: true} }

// Includes reports whether t lies in the range.
func (r Range) Includes(t Timestamp) bool {
	return r.Start <= t && (r.Open || t < r.End)
}

// IsEmpty reports whether the range includes no Timestamps.
func (r Range) IsEmpty() bool {
	return !r.Open && r.End <= r.Start
}

// Intersect returns the overlap of both ranges: the greater Start and
// the lesser End (an open end never tightens the bound). A disjoint
// pair yields an empty range, clamped so Start <= End still holds;
// intersection is total and never fails.
func (r Range) Intersect(other Range) Range {
	start := max(r.Start, other.Start)
	switch {
	case r.Open && other.Open:
		return Range{Start: start, Open: true}
	case r.Open:
		return NewRange(start, other.End)
	case other.Open:
		return NewRange(start, r.End)
	default:
		return NewRange(start, min(r.End, other.End))
	}
}

// IncludesRange reports whether every Timestamp in other is included
// in r. The empty range is included in every range.
func (r Range) IncludesRange(other Range) bool {
	if other.IsEmpty() {
		return true
	}
	if other.Start < r.Start {
		return false
	}
	if r.Open {
		return true
	}
	return !other.Open && other.End <= r.End
}

// Equal reports structural equality. Two empty ranges with different
// bounds are distinct values that include the same (no) Timestamps.
func (r Range) Equal(other Range) bool {
	return r == other
}

// String renders the range for logs and test failures.
func (r Range) String() string {
	if r.Open {
		return fmt.Sprintf("[%d, ...)", r.Start)
	}
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
