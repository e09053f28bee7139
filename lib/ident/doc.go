// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

// Package ident provides a ready-made 32-byte opaque identifier for
// Namespaces and Subspaces.
//
// The data model is generic over its identifier representations; any
// type with a deterministic total order and deterministic encoding
// will do. [ID] is the instantiation used throughout this repository's
// stores, keyrings, and tests: a fixed 32-byte value that can carry an
// Ed25519 public key, a hash of a human-readable name, or pure random
// rendezvous bytes.
//
// Key exports:
//
//   - [ID] -- comparable, encodable 32-byte identifier
//   - [FromBytes] / [FromPublicKey] / [Random] / [Parse] -- constructors
//
// This package has no dependencies on other sailce packages.
package ident
