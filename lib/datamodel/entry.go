// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package datamodel

import "fmt"

// Comparable is the capability set required of a pluggable identifier
// or digest representation: a deterministic total order. Equality is
// Compare == 0. A concrete representation is chosen by the embedding
// application (fixed-size byte array, public key bytes, hash digest);
// lib/ident and lib/digest provide ready-made ones.
type Comparable[T any] interface {
	Compare(T) int
}

// Entry is the atomic named fact of the data model: a timestamped
// reference to a payload within a (Namespace, Subspace, Path)
// location. The payload bytes themselves are never held — only their
// digest and length, as produced by the payload-digest collaborator.
//
// Entry is an immutable pure value. It is generic over the Namespace,
// Subspace, and PayloadDigest representations so the same model works
// for any parameter choice; peers instantiated with different
// parameters are not interoperable.
type Entry[N Comparable[N], S Comparable[S], D Comparable[D]] struct {
	// Namespace this Entry belongs to.
	Namespace N

	// Subspace this Entry belongs to.
	Subspace S

	// Path this Entry was written to.
	Path Path

	// Time is the claimed creation time.
	Time Timestamp

	// Digest of the payload, computed by the hashing collaborator.
	Digest D

	// Length of the payload in bytes.
	Length uint64
}

// NewEntry constructs an Entry, validating the Path against the
// namespace's Limits. Fails with ErrLengthExceeded (wrapped) if the
// Path violates a limit; no partial Entry is returned.
func NewEntry[N Comparable[N], S Comparable[S], D Comparable[D]](
	namespace N, subspace S, path Path, at Timestamp, digest D, length uint64, limits Limits,
) (Entry[N, S, D], error) {
	if err := path.CheckLimits(limits); err != nil {
		return Entry[N, S, D]{}, fmt.Errorf("entry path: %w", err)
	}
	return Entry[N, S, D]{
		Namespace: namespace,
		Subspace:  subspace,
		Path:      path,
		Time:      at,
		Digest:    digest,
		Length:    length,
	}, nil
}

// IsNewerThan reports whether e wins a conflict against other at the
// same (Namespace, Subspace, Path) location: the greater Timestamp
// wins; on equal Timestamps the strictly larger payload Length wins;
// on equal Lengths the greater payload Digest wins. This tie-break is
// a must-match-across-peers contract — every peer resolves the same
// conflict the same way without coordination.
func (e Entry[N, S, D]) IsNewerThan(other Entry[N, S, D]) bool {
	if e.Time != other.Time {
		return e.Time > other.Time
	}
	if e.Length != other.Length {
		return e.Length > other.Length
	}
	return e.Digest.Compare(other.Digest) > 0
}

// Compare is the total order over Entries: by Namespace, then
// Subspace, then Path, then the same field order as IsNewerThan
// (Time, Length, Digest). Returns -1, 0, or +1.
func (e Entry[N, S, D]) Compare(other Entry[N, S, D]) int {
	if c := e.Namespace.Compare(other.Namespace); c != 0 {
		return c
	}
	if c := e.Subspace.Compare(other.Subspace); c != 0 {
		return c
	}
	if c := e.Path.Compare(other.Path); c != 0 {
		return c
	}
	if c := e.Time.Compare(other.Time); c != 0 {
		return c
	}
	switch {
	case e.Length < other.Length:
		return -1
	case e.Length > other.Length:
		return 1
	}
	return e.Digest.Compare(other.Digest)
}

// Equal reports whether both Entries are identical in all six fields.
func (e Entry[N, S, D]) Equal(other Entry[N, S, D]) bool {
	return e.Compare(other) == 0
}
