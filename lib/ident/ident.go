// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package ident

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Size is the byte length of every ID.
const Size = 32

// ID is an opaque 32-byte identifier for a Namespace or Subspace.
// Thirty-two bytes fits the common representations: an Ed25519 public
// key (owned subspaces), or a hash of an arbitrary name (communal
// namespaces). The zero value is the all-zero ID.
//
// ID satisfies the datamodel.Comparable capability set and the binary
// and text marshalling interfaces the codec layer requires, so it can
// instantiate any of the generic types directly.
type ID [Size]byte

// FromBytes builds an ID from raw who-knows-where bytes, validating
// the length.
func FromBytes(raw []byte) (ID, error) {
	if len(raw) != Size {
		return ID{}, fmt.Errorf("identifier is %d bytes, want %d", len(raw), Size)
	}
	var id ID
	copy(id[:], raw)
	return id, nil
}

// FromPublicKey builds an ID from a 32-byte public key (e.g. Ed25519).
// This is the conventional representation for a Subspace owned by one
// writer.
func FromPublicKey(publicKey []byte) (ID, error) {
	id, err := FromBytes(publicKey)
	if err != nil {
		return ID{}, fmt.Errorf("public key identifier: %w", err)
	}
	return id, nil
}

// Random returns a fresh random ID. Useful for tests and for namespace
// identifiers that are pure rendezvous values.
func Random() (ID, error) {
	var id ID
	if _, err := rand.Read(id[:]); err != nil {
		return ID{}, fmt.Errorf("generating random identifier: %w", err)
	}
	return id, nil
}

// Parse decodes the canonical 64-character hex form produced by
// String.
func Parse(text string) (ID, error) {
	raw, err := hex.DecodeString(text)
	if err != nil {
		return ID{}, fmt.Errorf("parsing identifier: %w", err)
	}
	return FromBytes(raw)
}

// Compare orders IDs lexicographically by their bytes. Returns -1, 0,
// or +1. This is the total order the data model requires.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Equal reports whether both IDs are identical.
func (id ID) Equal(other ID) bool { return id == other }

// IsZero reports whether this is the all-zero ID.
func (id ID) IsZero() bool { return id == ID{} }

// String returns the canonical hex form.
func (id ID) String() string { return hex.EncodeToString(id[:]) }

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is
// the raw 32 bytes — deterministic, so it is safe as a cache key or
// digest input.
func (id ID) MarshalBinary() ([]byte, error) {
	return bytes.Clone(id[:]), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, validating
// the length.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler as the hex form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from the hex form.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
