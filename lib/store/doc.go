// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

// Package store provides the namespace-scoped Entry store with the
// prefix-pruning ingestion discipline.
//
// A store holds the live Entries of one namespace. Ingesting an Entry
// prunes every older Entry of the same Subspace at or below the new
// Entry's Path, and an Entry arriving under a newer one is rejected as
// obsolete. Conflicts are decided by Entry.IsNewerThan, so every peer
// ingesting the same set of Entries converges on the same live set
// regardless of arrival order.
//
// Memory is the reference implementation: sorted in-memory slice,
// linear scans, coarse lock. It is meant for tests, tooling, and as
// the behavioral contract for persistent implementations, not for
// large stores.
//
// Key exports:
//
//   - [Memory] -- in-memory store, safe for concurrent use
//   - [Memory.Put] -- ingest with pruning; reports Entries pruned
//   - [Memory.Query] -- Entries inside an Area, canonical order
//   - [Memory.QueryInterest] -- newest Entries under count/size limits
//   - [ErrWrongNamespace] / [ErrObsolete]
//
// Depends only on lib/datamodel.
package store
