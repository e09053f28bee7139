// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides a memory-safe buffer for root-secret key
// material.
//
// Buffer allocates memory outside the Go heap via mmap(MAP_ANONYMOUS),
// locks it into physical RAM via mlock (preventing swap), and marks it
// excluded from core dumps via madvise(MADV_DONTDUMP). On Close, the
// memory is zeroed, unlocked, and unmapped.
//
// Because the memory is outside the Go heap, the garbage collector
// never sees it and cannot copy or relocate it — the only way to
// guarantee that a namespace root secret does not persist in memory
// after it is no longer needed.
//
// The keyring holds every root secret in a Buffer; transient derived
// keys are plain values wiped explicitly (see lib/pathcrypt.Key.Zero).
package secret
