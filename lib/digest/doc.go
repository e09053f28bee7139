// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest is the payload-hashing collaborator of the data
// model: it computes the [Digest] and length values that Entries carry
// in place of payload bytes.
//
// Hashing uses BLAKE3 in keyed mode with a payload domain key, so a
// payload digest can never collide with a hash computed in another
// domain (key-chain derivation in lib/pathcrypt uses different keys).
// The data model itself only stores and compares Digest values; this
// package is the one place payload bytes are ever touched.
//
// Key exports:
//
//   - [Digest] -- totally ordered, encodable 32-byte payload identity
//   - [HashPayload] -- digest and length of an in-memory payload
//   - [Hasher] -- streaming digest for payloads of any size
//
// This package has no dependencies on other sailce packages.
package digest
