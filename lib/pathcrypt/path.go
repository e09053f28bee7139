// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package pathcrypt

import (
	"errors"
	"fmt"

	"github.com/DerickEddington/sailce/lib/datamodel"
)

// ErrDecryptionFailed reports that a per-component integrity check did
// not verify during path decryption: the ciphertext was corrupted, or
// it was produced under key material from a different derivation
// chain. Returned wrapped with context; match with errors.Is.
var ErrDecryptionFailed = errors.New("path decryption failed")

// EncryptedPath is a ciphertext path: structurally an ordinary
// datamodel.Path, but its components are ciphertext, so a distinct
// type keeps the two from being mixed up. Prefix comparison and Area
// computation on EncryptedPaths (via Path) are meaningful only among
// paths encrypted under key material from the same chain — a caller
// obligation the byte level cannot check.
type EncryptedPath struct {
	path datamodel.Path
}

// EncryptedFromPath wraps a Path whose components are already
// ciphertext, e.g. one decoded from a peer's message.
func EncryptedFromPath(path datamodel.Path) EncryptedPath {
	return EncryptedPath{path: path}
}

// Path returns the underlying component sequence, for encoding and
// for Area computation over ciphertext.
func (ep EncryptedPath) Path() datamodel.Path { return ep.path }

// Len returns the number of ciphertext components.
func (ep EncryptedPath) Len() int { return ep.path.Len() }

// Equal reports whether both ciphertext paths are byte-identical.
func (ep EncryptedPath) Equal(other EncryptedPath) bool {
	return ep.path.Equal(other.path)
}

// IsPrefixOf reports the prefix relation between two ciphertext paths.
// Under same-chain key material this coincides exactly with the
// plaintext prefix relation.
func (ep EncryptedPath) IsPrefixOf(other EncryptedPath) bool {
	return ep.path.IsPrefixOf(other.path)
}

// CiphertextLimits widens plaintext Limits by the scheme's
// per-component overhead, giving the Limits that ciphertext paths of a
// namespace are validated against.
func CiphertextLimits(limits datamodel.Limits, scheme Scheme) datamodel.Limits {
	overhead := scheme.ComponentOverhead()
	return datamodel.Limits{
		MaxComponentLength: limits.MaxComponentLength + overhead,
		MaxComponentCount:  limits.MaxComponentCount,
		MaxPathLength:      limits.MaxPathLength + overhead*limits.MaxComponentCount,
	}
}

// EncryptPath deterministically encrypts a plaintext path under key.
//
// Component i is encrypted under key_i, where key_0 is the given key
// and key_{i+1} = DeriveKey(key_i, plaintext component_i). Because the
// chain up to position k depends only on the first k components, two
// plaintext paths sharing a prefix of length k encrypt to ciphertext
// paths that are byte-identical in their first k components and (with
// overwhelming probability) divergent from position k on — prefix
// structure survives, sibling order does not.
//
// The key is a root key for whole paths, or a [DeriveSubkey] result
// when path is relative to a granted prefix. limits is the ciphertext
// bound (see [CiphertextLimits]); the result is validated against it
// and construction fails with datamodel.ErrLengthExceeded (wrapped) on
// violation, yielding no partial value.
func EncryptPath(scheme Scheme, key Key, path datamodel.Path, limits datamodel.Limits) (EncryptedPath, error) {
	components := make([][]byte, 0, path.Len())
	levelKey := key
	for component := range path.Components() {
		components = append(components, scheme.EncryptComponent(levelKey, component))
		levelKey = scheme.DeriveKey(levelKey, component)
	}
	levelKey.Zero()

	cipherPath, err := datamodel.NewPath(limits, components...)
	if err != nil {
		return EncryptedPath{}, fmt.Errorf("encrypted path: %w", err)
	}
	return EncryptedPath{path: cipherPath}, nil
}

// DecryptPath inverts EncryptPath under the same key. Each decrypted
// plaintext component feeds the key chain for the next level, exactly
// as during encryption. Fails with ErrDecryptionFailed (wrapped) if
// any component's integrity check does not verify, and with
// datamodel.ErrLengthExceeded (wrapped) if the decrypted path violates
// the plaintext limits; either way no partial value is returned.
func DecryptPath(scheme Scheme, key Key, encrypted EncryptedPath, limits datamodel.Limits) (datamodel.Path, error) {
	components := make([][]byte, 0, encrypted.Len())
	levelKey := key
	index := 0
	for ciphertext := range encrypted.path.Components() {
		component, err := scheme.DecryptComponent(levelKey, ciphertext)
		if err != nil {
			return datamodel.Path{}, fmt.Errorf("component %d: %w: %w", index, ErrDecryptionFailed, err)
		}
		components = append(components, component)
		levelKey = scheme.DeriveKey(levelKey, component)
		index++
	}
	levelKey.Zero()

	path, err := datamodel.NewPath(limits, components...)
	if err != nil {
		return datamodel.Path{}, fmt.Errorf("decrypted path: %w", err)
	}
	return path, nil
}

// DeriveSubkey walks the key chain along a plaintext prefix and
// returns the key for the subtree strictly below it. The holder can
// encrypt and decrypt path components below the prefix — passing
// paths relative to it to [EncryptPath] and [DecryptPath] — but
// learns nothing about the root secret, ancestor levels, or sibling
// subtrees. This is how a peer is granted exactly one subtree of the
// namespace.
func DeriveSubkey(scheme Scheme, key Key, prefix datamodel.Path) Key {
	subkey := key
	for component := range prefix.Components() {
		subkey = scheme.DeriveKey(subkey, component)
	}
	return subkey
}
