// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package datamodel

import "fmt"

// SubspaceSelector selects either one specific Subspace or all of
// them. The zero value selects all Subspaces.
type SubspaceSelector[S Comparable[S]] struct {
	id       S
	specific bool
}

// AnySubspace returns the selector matching every Subspace.
func AnySubspace[S Comparable[S]]() SubspaceSelector[S] {
	return SubspaceSelector[S]{}
}

// OneSubspace returns the selector matching exactly id.
func OneSubspace[S Comparable[S]](id S) SubspaceSelector[S] {
	return SubspaceSelector[S]{id: id, specific: true}
}

// IsAny reports whether the selector matches every Subspace.
func (s SubspaceSelector[S]) IsAny() bool { return !s.specific }

// ID returns the selected Subspace and true, or the zero value and
// false when the selector matches every Subspace.
func (s SubspaceSelector[S]) ID() (S, bool) { return s.id, s.specific }

// Includes reports whether the selector matches id.
func (s SubspaceSelector[S]) Includes(id S) bool {
	return !s.specific || s.id.Compare(id) == 0
}

// IncludesSelector reports whether every Subspace matched by other is
// also matched by s. A specific selector never includes "any".
func (s SubspaceSelector[S]) IncludesSelector(other SubspaceSelector[S]) bool {
	if !s.specific {
		return true
	}
	return other.specific && s.id.Compare(other.id) == 0
}

// Equal reports whether both selectors match the same Subspaces.
func (s SubspaceSelector[S]) Equal(other SubspaceSelector[S]) bool {
	if s.specific != other.specific {
		return false
	}
	return !s.specific || s.id.Compare(other.id) == 0
}

// String renders the selector for logs and test failures.
func (s SubspaceSelector[S]) String() string {
	if !s.specific {
		return "any"
	}
	return fmt.Sprintf("%v", s.id)
}

// Area is a rectangular predicate over the entry space: a Subspace
// selector, a Path acting as a required prefix, and a Timestamp range.
// An Entry is in the Area iff all three dimensions match.
//
// Areas form a meet-semilattice under Intersect, with the empty Area
// as bottom: intersection is total, and emptiness is a normal value
// rather than an error, so callers can chain intersections without
// special-casing. The zero value is an empty Area.
//
// Area computations are equally valid on ciphertext paths produced by
// lib/pathcrypt, provided all paths involved were encrypted under key
// material from the same derivation chain — a caller obligation that
// cannot be checked at the byte level.
type Area[S Comparable[S]] struct {
	// Subspace selects which Subspaces are included.
	Subspace SubspaceSelector[S]

	// Prefix is the Path that an included Entry's Path must have as a
	// prefix. The empty path includes every Path.
	Prefix Path

	// Times is the Timestamp range an included Entry must lie in.
	Times Range
}

// EmptyArea returns the canonical empty Area: any Subspace, empty
// Prefix, empty time range. It includes no Entries.
func EmptyArea[S Comparable[S]]() Area[S] {
	return Area[S]{}
}

// FullArea returns the Area including every Entry of a namespace.
func FullArea[S Comparable[S]]() Area[S] {
	return Area[S]{Times: FullRange()}
}

// SubspaceArea returns the Area including exactly the Entries of one
// Subspace.
func SubspaceArea[S Comparable[S]](id S) Area[S] {
	return Area[S]{Subspace: OneSubspace(id), Times: FullRange()}
}

// IsEmpty reports whether the Area includes no Entries, which is the
// case iff its time range is empty.
func (a Area[S]) IsEmpty() bool {
	return a.Times.IsEmpty()
}

// Contains reports whether the location (subspace, path, at) lies in
// the Area: the Subspace matches the selector, the Area's Prefix is a
// prefix of path, and at is in the time range.
func (a Area[S]) Contains(subspace S, path Path, at Timestamp) bool {
	return a.Subspace.Includes(subspace) &&
		a.Prefix.IsPrefixOf(path) &&
		a.Times.Includes(at)
}

// ContainsEntry reports whether the Entry lies in the Area. The
// Entry's Namespace is not examined; comparing Areas across
// namespaces is meaningless and is the caller's responsibility to
// avoid.
func ContainsEntry[N Comparable[N], S Comparable[S], D Comparable[D]](
	a Area[S], entry Entry[N, S, D],
) bool {
	return a.Contains(entry.Subspace, entry.Path, entry.Time)
}

// Intersect returns the greatest Area contained in both a and other,
// computed field-wise: Subspace selectors must agree (or either may be
// "any"); the Prefixes must be prefix-related, and the longer — more
// specific — one is kept, which is what lets progressively narrower
// queries compose; the time ranges overlap. If any dimension resolves
// to nothing the result is the canonical empty Area. Intersection
// never fails.
func (a Area[S]) Intersect(other Area[S]) Area[S] {
	var subspace SubspaceSelector[S]
	switch {
	case a.Subspace.IsAny():
		subspace = other.Subspace
	case other.Subspace.IsAny():
		subspace = a.Subspace
	case a.Subspace.Equal(other.Subspace):
		subspace = a.Subspace
	default:
		return EmptyArea[S]()
	}

	var prefix Path
	switch {
	case a.Prefix.IsPrefixOf(other.Prefix):
		prefix = other.Prefix
	case other.Prefix.IsPrefixOf(a.Prefix):
		prefix = a.Prefix
	default:
		return EmptyArea[S]()
	}

	times := a.Times.Intersect(other.Times)
	if times.IsEmpty() {
		return EmptyArea[S]()
	}
	return Area[S]{Subspace: subspace, Prefix: prefix, Times: times}
}

// IncludesArea reports whether every Entry included in other is also
// included in a. Every Area includes itself and the empty Area.
func (a Area[S]) IncludesArea(other Area[S]) bool {
	if other.IsEmpty() {
		return true
	}
	return a.Subspace.IncludesSelector(other.Subspace) &&
		a.Prefix.IsPrefixOf(other.Prefix) &&
		a.Times.IncludesRange(other.Times)
}

// Equal reports structural equality of all three dimensions. Two
// Areas that include the same set of Entries can still be unequal
// (e.g. distinct empty Areas); use IsEmpty or IncludesArea in both
// directions for extensional comparisons.
func (a Area[S]) Equal(other Area[S]) bool {
	return a.Subspace.Equal(other.Subspace) &&
		a.Prefix.Equal(other.Prefix) &&
		a.Times.Equal(other.Times)
}

// String renders the Area for logs and test failures.
func (a Area[S]) String() string {
	return fmt.Sprintf("{subspace: %v, prefix: %q, times: %v}", a.Subspace, a.Prefix.String(), a.Times)
}
