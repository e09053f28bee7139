// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"math"
	"testing"

	"github.com/DerickEddington/sailce/lib/datamodel"
	"github.com/DerickEddington/sailce/lib/digest"
	"github.com/DerickEddington/sailce/lib/ident"
)

var testLimits = datamodel.Limits{
	MaxComponentLength: 32,
	MaxComponentCount:  6,
	MaxPathLength:      128,
}

type testEntry = datamodel.Entry[ident.ID, ident.ID, digest.Digest]

var (
	namespaceA = idWithFill(0x0a)
	namespaceB = idWithFill(0x0b)
	subspaceX  = idWithFill(0x01)
	subspaceY  = idWithFill(0x02)
)

func idWithFill(fill byte) ident.ID {
	var id ident.ID
	for index := range id {
		id[index] = fill
	}
	return id
}

func mustPath(t *testing.T, components ...string) datamodel.Path {
	t.Helper()
	path, err := datamodel.PathFromStrings(testLimits, components...)
	if err != nil {
		t.Fatalf("building path %v: %v", components, err)
	}
	return path
}

func entryAt(t *testing.T, subspace ident.ID, path datamodel.Path, at datamodel.Timestamp, payload string) testEntry {
	t.Helper()
	payloadDigest, payloadLength := digest.HashPayload([]byte(payload))
	entry, err := datamodel.NewEntry(namespaceA, subspace, path, at, payloadDigest, payloadLength, testLimits)
	if err != nil {
		t.Fatalf("building entry: %v", err)
	}
	return entry
}

func mustPut(t *testing.T, memory *Memory[ident.ID, ident.ID, digest.Digest], entry testEntry) int {
	t.Helper()
	pruned, err := memory.Put(entry)
	if err != nil {
		t.Fatalf("Put(%q): %v", entry.Path, err)
	}
	return pruned
}

func newTestStore() *Memory[ident.ID, ident.ID, digest.Digest] {
	return NewMemory[ident.ID, ident.ID, digest.Digest](namespaceA, testLimits)
}

func TestPutAndGet(t *testing.T) {
	memory := newTestStore()

	entry := entryAt(t, subspaceX, mustPath(t, "docs", "report"), 100, "v1")
	if pruned := mustPut(t, memory, entry); pruned != 0 {
		t.Errorf("first Put pruned %d entries", pruned)
	}
	if memory.Len() != 1 {
		t.Errorf("Len() = %d, want 1", memory.Len())
	}

	got, ok := memory.Get(subspaceX, mustPath(t, "docs", "report"))
	if !ok {
		t.Fatalf("Get did not find the entry")
	}
	if !got.Equal(entry) {
		t.Errorf("Get = %+v, want %+v", got, entry)
	}

	if _, ok := memory.Get(subspaceY, mustPath(t, "docs", "report")); ok {
		t.Errorf("Get found the entry under the wrong subspace")
	}
	if _, ok := memory.Get(subspaceX, mustPath(t, "docs")); ok {
		t.Errorf("Get found an entry at a prefix of its path")
	}
}

func TestPutRejectsWrongNamespace(t *testing.T) {
	memory := newTestStore()

	payloadDigest, payloadLength := digest.HashPayload([]byte("v1"))
	foreign, err := datamodel.NewEntry(namespaceB, subspaceX, mustPath(t, "docs"),
		100, payloadDigest, payloadLength, testLimits)
	if err != nil {
		t.Fatalf("building entry: %v", err)
	}

	if _, err := memory.Put(foreign); !errors.Is(err, ErrWrongNamespace) {
		t.Errorf("Put of foreign entry: error = %v, want ErrWrongNamespace", err)
	}
}

func TestNewerEntryAtSamePathWins(t *testing.T) {
	memory := newTestStore()
	path := mustPath(t, "docs", "report")

	mustPut(t, memory, entryAt(t, subspaceX, path, 100, "old"))
	newer := entryAt(t, subspaceX, path, 200, "new")
	if pruned := mustPut(t, memory, newer); pruned != 1 {
		t.Errorf("newer entry pruned %d, want 1", pruned)
	}

	got, ok := memory.Get(subspaceX, path)
	if !ok || !got.Equal(newer) {
		t.Errorf("live entry is %+v, want the newer one", got)
	}
	if memory.Len() != 1 {
		t.Errorf("Len() = %d, want 1", memory.Len())
	}
}

func TestOlderEntryIsObsolete(t *testing.T) {
	memory := newTestStore()
	path := mustPath(t, "docs", "report")

	current := entryAt(t, subspaceX, path, 200, "current")
	mustPut(t, memory, current)

	if _, err := memory.Put(entryAt(t, subspaceX, path, 100, "stale")); !errors.Is(err, ErrObsolete) {
		t.Errorf("Put of older entry: error = %v, want ErrObsolete", err)
	}

	got, _ := memory.Get(subspaceX, path)
	if !got.Equal(current) {
		t.Errorf("obsolete Put displaced the live entry")
	}
}

func TestReingestingSameEntryIsNoOp(t *testing.T) {
	memory := newTestStore()
	entry := entryAt(t, subspaceX, mustPath(t, "docs"), 100, "v1")

	mustPut(t, memory, entry)
	if pruned := mustPut(t, memory, entry); pruned != 0 {
		t.Errorf("re-Put pruned %d entries", pruned)
	}
	if memory.Len() != 1 {
		t.Errorf("Len() = %d after duplicate Put, want 1", memory.Len())
	}
}

func TestPutPrunesSubtree(t *testing.T) {
	memory := newTestStore()

	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "docs", "a"), 100, "a"))
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "docs", "b"), 120, "b"))
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "blog", "c"), 110, "c"))
	mustPut(t, memory, entryAt(t, subspaceY, mustPath(t, "docs", "d"), 100, "d"))

	// A newer write at docs/ subsumes the whole docs/ subtree of the
	// same subspace, and nothing else.
	subsuming := entryAt(t, subspaceX, mustPath(t, "docs"), 200, "subsume")
	if pruned := mustPut(t, memory, subsuming); pruned != 2 {
		t.Errorf("Put at docs/ pruned %d entries, want 2", pruned)
	}

	if _, ok := memory.Get(subspaceX, mustPath(t, "docs", "a")); ok {
		t.Errorf("pruned entry docs/a is still live")
	}
	if _, ok := memory.Get(subspaceX, mustPath(t, "blog", "c")); !ok {
		t.Errorf("entry outside the subtree was pruned")
	}
	if _, ok := memory.Get(subspaceY, mustPath(t, "docs", "d")); !ok {
		t.Errorf("entry of another subspace was pruned")
	}
	if memory.Len() != 3 {
		t.Errorf("Len() = %d, want 3", memory.Len())
	}
}

func TestPutUnderNewerPrefixIsObsolete(t *testing.T) {
	memory := newTestStore()

	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "docs"), 200, "root"))

	// Writing below a newer prefix entry would be immediately undone,
	// so it is rejected outright.
	if _, err := memory.Put(entryAt(t, subspaceX, mustPath(t, "docs", "late"), 100, "late")); !errors.Is(err, ErrObsolete) {
		t.Errorf("Put below newer prefix: error = %v, want ErrObsolete", err)
	}

	// A write below that is itself newer is fine.
	if pruned := mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "docs", "fresh"), 300, "fresh")); pruned != 0 {
		t.Errorf("newer write below prefix pruned %d entries", pruned)
	}
}

func TestConvergenceRegardlessOfArrivalOrder(t *testing.T) {
	path := mustPath(t, "docs", "report")
	first := entryAt(t, subspaceX, path, 100, "first")
	second := entryAt(t, subspaceX, path, 200, "second")
	subsuming := entryAt(t, subspaceX, mustPath(t, "docs"), 300, "subsuming")

	orders := [][]testEntry{
		{first, second, subsuming},
		{subsuming, second, first},
		{second, subsuming, first},
		{second, first, subsuming},
	}
	for index, order := range orders {
		memory := newTestStore()
		for _, entry := range order {
			// Obsolete rejections are expected in some orders.
			if _, err := memory.Put(entry); err != nil && !errors.Is(err, ErrObsolete) {
				t.Fatalf("order %d: Put: %v", index, err)
			}
		}
		if memory.Len() != 1 {
			t.Fatalf("order %d: Len() = %d, want 1", index, memory.Len())
		}
		got, ok := memory.Get(subspaceX, mustPath(t, "docs"))
		if !ok || !got.Equal(subsuming) {
			t.Errorf("order %d: live entry is %+v, want the subsuming one", index, got)
		}
	}
}

func TestQueryFiltersAndOrders(t *testing.T) {
	memory := newTestStore()

	docsA := entryAt(t, subspaceX, mustPath(t, "docs", "a"), 100, "a")
	docsB := entryAt(t, subspaceX, mustPath(t, "docs", "b"), 150, "b")
	blog := entryAt(t, subspaceX, mustPath(t, "blog"), 120, "c")
	otherSub := entryAt(t, subspaceY, mustPath(t, "docs", "c"), 130, "d")
	mustPut(t, memory, docsA)
	mustPut(t, memory, docsB)
	mustPut(t, memory, blog)
	mustPut(t, memory, otherSub)

	area := datamodel.Area[ident.ID]{
		Subspace: datamodel.OneSubspace(subspaceX),
		Prefix:   mustPath(t, "docs"),
		Times:    datamodel.FullRange(),
	}

	var got []testEntry
	for entry := range memory.Query(area) {
		got = append(got, entry)
	}
	if len(got) != 2 {
		t.Fatalf("Query returned %d entries, want 2", len(got))
	}
	// Canonical order: docs/a before docs/b.
	if !got[0].Equal(docsA) || !got[1].Equal(docsB) {
		t.Errorf("Query order: got [%q %q]", got[0].Path, got[1].Path)
	}

	// Time dimension filters too.
	area.Times = datamodel.NewRange(0, 120)
	count := 0
	for range memory.Query(area) {
		count++
	}
	if count != 1 {
		t.Errorf("time-bounded Query returned %d entries, want 1", count)
	}
}

func TestQuerySnapshotSurvivesConcurrentPut(t *testing.T) {
	memory := newTestStore()
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "docs", "a"), 100, "a"))
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "docs", "b"), 100, "b"))

	sequence := memory.Query(datamodel.FullArea[ident.ID]())

	// Mutate after the snapshot is taken.
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "docs"), 999, "subsume"))

	count := 0
	for range sequence {
		count++
	}
	if count != 2 {
		t.Errorf("snapshot yielded %d entries, want the 2 captured", count)
	}
}

func TestQueryInterestMaxCount(t *testing.T) {
	memory := newTestStore()
	oldest := entryAt(t, subspaceX, mustPath(t, "a"), 100, "1")
	middle := entryAt(t, subspaceX, mustPath(t, "b"), 200, "2")
	newest := entryAt(t, subspaceX, mustPath(t, "c"), 300, "3")
	mustPut(t, memory, oldest)
	mustPut(t, memory, middle)
	mustPut(t, memory, newest)

	interest := datamodel.AreaOfInterest[ident.ID]{
		Area:     datamodel.FullArea[ident.ID](),
		MaxCount: 2,
	}
	got := memory.QueryInterest(interest)
	if len(got) != 2 {
		t.Fatalf("QueryInterest returned %d entries, want 2", len(got))
	}
	if !got[0].Equal(newest) || !got[1].Equal(middle) {
		t.Errorf("QueryInterest = [%q %q], want newest first", got[0].Path, got[1].Path)
	}
}

func TestQueryInterestMaxSize(t *testing.T) {
	memory := newTestStore()
	// Payload lengths: 4, 8, 2 bytes, newest first: "dddddddd"(8), then
	// "cc"(2), then "aaaa"(4).
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "a"), 100, "aaaa"))
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "c"), 200, "cc"))
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "d"), 300, "dddddddd"))

	interest := datamodel.AreaOfInterest[ident.ID]{
		Area:    datamodel.FullArea[ident.ID](),
		MaxSize: 10,
	}
	got := memory.QueryInterest(interest)
	// 8 + 2 = 10 fits; adding the 4-byte payload would exceed it.
	if len(got) != 2 {
		t.Fatalf("QueryInterest returned %d entries, want 2", len(got))
	}
	if got[0].Length != 8 || got[1].Length != 2 {
		t.Errorf("QueryInterest lengths = [%d %d], want [8 2]", got[0].Length, got[1].Length)
	}
}

func TestQueryInterestHugeClaimedLength(t *testing.T) {
	memory := newTestStore()
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "small"), 300, "sssss"))

	// Length is a peer-claimed value; a maximal claim must not wrap
	// the budget arithmetic and slip past MaxSize.
	payloadDigest, _ := digest.HashPayload([]byte("huge"))
	huge, err := datamodel.NewEntry(namespaceA, subspaceX, mustPath(t, "huge"),
		200, payloadDigest, math.MaxUint64, testLimits)
	if err != nil {
		t.Fatalf("building entry: %v", err)
	}
	mustPut(t, memory, huge)

	got := memory.QueryInterest(datamodel.AreaOfInterest[ident.ID]{
		Area:    datamodel.FullArea[ident.ID](),
		MaxSize: 1000,
	})
	if len(got) != 1 {
		t.Fatalf("QueryInterest returned %d entries, want only the 5-byte one", len(got))
	}
	if got[0].Length != 5 {
		t.Errorf("admitted entry has length %d, want 5", got[0].Length)
	}
}

func TestQueryInterestUnlimited(t *testing.T) {
	memory := newTestStore()
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "a"), 100, "1"))
	mustPut(t, memory, entryAt(t, subspaceX, mustPath(t, "b"), 200, "2"))

	got := memory.QueryInterest(datamodel.AreaOfInterest[ident.ID]{
		Area: datamodel.FullArea[ident.ID](),
	})
	if len(got) != 2 {
		t.Errorf("unlimited QueryInterest returned %d entries, want 2", len(got))
	}

	// The Area still bounds which entries qualify.
	got = memory.QueryInterest(datamodel.AreaOfInterest[ident.ID]{
		Area: datamodel.SubspaceArea(subspaceY),
	})
	if len(got) != 0 {
		t.Errorf("QueryInterest outside the area returned %d entries", len(got))
	}
}
