// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

// Package pathcrypt encrypts hierarchical paths while preserving their
// prefix structure, so Area membership and intersection can be
// evaluated on ciphertext by parties who must not see plaintext names.
//
// The construction is a hierarchical key chain: key_0 derives from a
// namespace root secret, key_{i+1} = DeriveKey(key_i, component_i),
// and component_i is encrypted — deterministically, with an embedded
// integrity check — under key_i. Since the chain up to level k depends
// only on the first k plaintext components, paths sharing a plaintext
// prefix share exactly that much ciphertext prefix, and paths
// diverging at level k produce ciphertexts diverging there and never
// re-converging. Sibling order is deliberately NOT preserved: an
// order-preserving transform would leak how components compare to any
// observer holding two ciphertexts, which private area intersection
// must not allow. Prefix structure leaks strictly less.
//
// [DeriveSubkey] hands a peer the key for one subtree without
// revealing the root, ancestors, or siblings — the primitive that
// makes Private Area Intersection possible without full key
// disclosure.
//
// Key exports:
//
//   - [EncryptPath] / [DecryptPath] -- deterministic path transform
//     and its inverse; decryption fails with [ErrDecryptionFailed] on
//     any integrity violation rather than returning wrong plaintext
//   - [DeriveSubkey] / [Key] -- pure-value key chain operations
//   - [EncryptedPath] -- ciphertext paths, kept a distinct type
//   - [Scheme] / [Blake3XChaCha] -- pluggable primitives; the default
//     is BLAKE3 keyed derivation with SIV-style XChaCha20-Poly1305
//   - [CiphertextLimits] -- plaintext Limits widened by the
//     per-component ciphertext overhead
//
// Everything here is a synchronous pure computation over owned
// values; no key cache or shared state exists, so concurrent use
// needs no coordination.
//
// Depends on lib/datamodel for Path and Limits.
package pathcrypt
