// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/DerickEddington/sailce/lib/datamodel"
)

// ErrWrongNamespace reports an Entry offered to a store scoped to a
// different namespace. Match with errors.Is.
var ErrWrongNamespace = errors.New("entry belongs to a different namespace")

// ErrObsolete reports an Entry that lost its conflict on arrival: the
// store already holds a newer Entry at the same path or at a prefix of
// it, so ingesting the offered Entry would immediately be undone.
// Match with errors.Is. An obsolete Entry is not an error condition in
// the protocol sense; callers synchronising with peers usually count
// it and move on.
var ErrObsolete = errors.New("entry is obsolete")

// Memory is an in-memory Entry store scoped to a single namespace,
// with the prefix-pruning ingestion discipline: a newly ingested Entry
// deletes every older Entry of the same Subspace at or below its Path,
// and is itself rejected as obsolete when a newer Entry already exists
// at or above its Path. Writing to a path therefore subsumes the whole
// subtree under it, which is what makes overwrite-by-prefix (e.g.
// "delete this directory") expressible as a single Entry.
//
// Entries are held sorted by Entry.Compare, so queries yield a
// deterministic order. A Memory is safe for concurrent use.
type Memory[N datamodel.Comparable[N], S datamodel.Comparable[S], D datamodel.Comparable[D]] struct {
	mu        sync.RWMutex
	namespace N
	limits    datamodel.Limits
	entries   []datamodel.Entry[N, S, D]
}

// NewMemory returns an empty store for the given namespace. limits is
// the namespace's agreed Path bound; Entries violating it are rejected
// at ingestion.
func NewMemory[N datamodel.Comparable[N], S datamodel.Comparable[S], D datamodel.Comparable[D]](
	namespace N, limits datamodel.Limits,
) *Memory[N, S, D] {
	return &Memory[N, S, D]{namespace: namespace, limits: limits}
}

// Namespace returns the namespace this store is scoped to.
func (m *Memory[N, S, D]) Namespace() N { return m.namespace }

// Limits returns the Path bound Entries are validated against.
func (m *Memory[N, S, D]) Limits() datamodel.Limits { return m.limits }

// Len returns the number of live Entries.
func (m *Memory[N, S, D]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Put ingests an Entry. Returns the number of older Entries the new
// one pruned (Entries of the same Subspace at or below the new Path).
//
// Fails with ErrWrongNamespace if the Entry is for another namespace,
// ErrLengthExceeded (wrapped) if its Path violates the store's limits,
// and ErrObsolete if the store already holds a newer Entry at the same
// Path or a prefix of it. Re-ingesting an Entry the store already
// holds is a no-op, not an error.
func (m *Memory[N, S, D]) Put(entry datamodel.Entry[N, S, D]) (pruned int, err error) {
	if entry.Namespace.Compare(m.namespace) != 0 {
		return 0, fmt.Errorf("put: %w", ErrWrongNamespace)
	}
	if err := entry.Path.CheckLimits(m.limits); err != nil {
		return 0, fmt.Errorf("put: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// First pass: is the new Entry already beaten? Any same-subspace
	// Entry at a prefix of (or equal to) the new Path that is not
	// older makes the newcomer obsolete.
	for _, existing := range m.entries {
		if existing.Subspace.Compare(entry.Subspace) != 0 {
			continue
		}
		if !existing.Path.IsPrefixOf(entry.Path) {
			continue
		}
		if existing.Equal(entry) {
			return 0, nil
		}
		if !entry.IsNewerThan(existing) {
			return 0, fmt.Errorf("put at %q: %w", entry.Path.String(), ErrObsolete)
		}
	}

	// Second pass: the newcomer wins. Drop every older same-subspace
	// Entry at or below the new Path.
	kept := m.entries[:0]
	for _, existing := range m.entries {
		doomed := existing.Subspace.Compare(entry.Subspace) == 0 &&
			entry.Path.IsPrefixOf(existing.Path) &&
			entry.IsNewerThan(existing)
		if doomed {
			pruned++
			continue
		}
		kept = append(kept, existing)
	}
	m.entries = kept

	position, _ := slices.BinarySearchFunc(m.entries, entry,
		func(a, b datamodel.Entry[N, S, D]) int { return a.Compare(b) })
	m.entries = slices.Insert(m.entries, position, entry)
	return pruned, nil
}

// Get returns the Entry at exactly (subspace, path), if one is live.
func (m *Memory[N, S, D]) Get(subspace S, path datamodel.Path) (datamodel.Entry[N, S, D], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, existing := range m.entries {
		if existing.Subspace.Compare(subspace) == 0 && existing.Path.Equal(path) {
			return existing, true
		}
	}
	return datamodel.Entry[N, S, D]{}, false
}

// Query returns the live Entries inside the Area, in Entry.Compare
// order. The iterator ranges over a snapshot taken when Query is
// called, so it is not invalidated by concurrent Puts.
func (m *Memory[N, S, D]) Query(area datamodel.Area[S]) iter.Seq[datamodel.Entry[N, S, D]] {
	m.mu.RLock()
	snapshot := slices.Clone(m.entries)
	m.mu.RUnlock()

	return func(yield func(datamodel.Entry[N, S, D]) bool) {
		for _, entry := range snapshot {
			if !datamodel.ContainsEntry(area, entry) {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// QueryInterest returns the Entries admitted by an AreaOfInterest,
// newest first. Qualifying Entries (those inside the Area) are ranked
// by the conflict order (IsNewerThan); MaxCount then admits only that
// many from the top, and MaxSize admits an Entry only while the
// payload lengths of it and everything ranked above it fit the budget.
// A zero limit means unlimited.
//
// Newest-first is the useful order for the synchronising callers this
// exists for; range over Query for the canonical order instead.
func (m *Memory[N, S, D]) QueryInterest(interest datamodel.AreaOfInterest[S]) []datamodel.Entry[N, S, D] {
	m.mu.RLock()
	var qualifying []datamodel.Entry[N, S, D]
	for _, entry := range m.entries {
		if datamodel.ContainsEntry(interest.Area, entry) {
			qualifying = append(qualifying, entry)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(qualifying, func(a, b datamodel.Entry[N, S, D]) int {
		if a.IsNewerThan(b) {
			return -1
		}
		if b.IsNewerThan(a) {
			return 1
		}
		return a.Compare(b)
	})

	admitted := qualifying[:0]
	var totalSize uint64
	for _, entry := range qualifying {
		if interest.MaxCount != 0 && uint64(len(admitted)) >= interest.MaxCount {
			break
		}
		// Compare against the remaining budget rather than summing;
		// Length is a peer-claimed value and a sum can wrap uint64.
		if interest.MaxSize != 0 && entry.Length > interest.MaxSize-totalSize {
			break
		}
		totalSize += entry.Length
		admitted = append(admitted, entry)
	}
	return slices.Clip(admitted)
}
