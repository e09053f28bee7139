// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package pathcrypt

// KeySize is the byte length of every key in a path-encryption chain:
// root keys, per-level keys, and subtree keys.
const KeySize = 32

// Key is one key of a path-encryption derivation chain. Keys are pure
// owned values: derivation returns a new Key and never mutates shared
// state, so any number of chains can be walked concurrently.
//
// A Key is secret material. Hold long-lived root secrets in
// lib/secret buffers and derive Keys from them transiently; call Zero
// on transient copies when done.
type Key [KeySize]byte

// Zero wipes the key material in place.
func (k *Key) Zero() {
	for index := range k {
		k[index] = 0
	}
}

// Scheme is a pair of algorithms for path encryption: a keyed
// deterministic component transform and a one-way key derivation. All
// peers of a namespace must use the same Scheme (and the same root
// secret) for their ciphertext paths to be comparable.
//
// [Blake3XChaCha] is the default; implement Scheme only to
// interoperate with a system that fixed different primitives.
type Scheme interface {
	// RootKey derives the level-zero key of a chain from a namespace
	// (or subspace) root secret of any length.
	RootKey(secret []byte) Key

	// DeriveKey derives the key for the components that follow
	// component, when component was (or would be) encrypted under
	// parent. Must be non-invertible even for known components: a
	// child key must not reveal the parent, and sibling keys must not
	// reveal each other.
	DeriveKey(parent Key, component []byte) Key

	// EncryptComponent deterministically encrypts a single plaintext
	// component under key, embedding a per-component integrity check.
	EncryptComponent(key Key, component []byte) []byte

	// DecryptComponent inverts EncryptComponent. Fails if the
	// integrity check does not verify — corrupted ciphertext or a key
	// from a different chain.
	DecryptComponent(key Key, ciphertext []byte) ([]byte, error)

	// ComponentOverhead is the fixed ciphertext expansion per
	// component in bytes.
	ComponentOverhead() int
}
