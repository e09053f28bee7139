// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

// Package datamodel defines the core value types for naming payloads
// in a peer-to-peer store: bounded hierarchical [Path]s, timestamped
// [Entry]s, and [Area]s that select rectangular regions of the entry
// space.
//
// The package is a pure value-computation library. Every operation is
// a synchronous, side-effect-free transformation over immutable
// inputs; there is no shared mutable state, so everything here is safe
// to call concurrently without coordination. Construction is the only
// operation that can fail, and it fails fast without yielding a
// partial value.
//
// Key exports:
//
//   - [Path] / [Limits] -- bounded component sequences with prefix
//     ordering, concatenation, and lazy component iteration
//   - [Entry] / [Timestamp] -- the atomic named fact, with the
//     deterministic newer-wins conflict order all peers must share
//   - [Area] / [Range] / [SubspaceSelector] -- rectangular entry-space
//     predicates forming a meet-semilattice under [Area.Intersect]
//   - [AreaOfInterest] -- an Area plus store-relative count/size limits
//   - [AuthorisedEntry] -- an Entry paired with a verified write token
//   - [Comparable] -- the capability set a pluggable Namespace,
//     Subspace, or payload-digest representation must satisfy
//
// Identifier and digest representations are supplied by the embedding
// application; lib/ident and lib/digest provide ready-made ones. The
// deterministic byte encoding of these values lives in lib/codec, and
// prefix-preserving path encryption in lib/pathcrypt.
//
// This package has no dependencies on other sailce packages.
package datamodel
