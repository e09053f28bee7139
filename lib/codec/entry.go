// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"

	"github.com/DerickEddington/sailce/lib/datamodel"
)

// entryWire is the wire shape of an Entry: a CBOR map with fixed
// integer keys. Integer keys plus Core Deterministic Encoding make the
// bytes a pure function of the logical value.
type entryWire struct {
	Namespace []byte   `cbor:"1,keyasint"`
	Subspace  []byte   `cbor:"2,keyasint"`
	Path      [][]byte `cbor:"3,keyasint"`
	Time      uint64   `cbor:"4,keyasint"`
	Digest    []byte   `cbor:"5,keyasint"`
	Length    uint64   `cbor:"6,keyasint"`
}

// EncodeEntry returns the deterministic encoding of an Entry. Equal
// Entries always encode to identical bytes, so the encoding can serve
// as a storage index key or as the input to a signature.
func EncodeEntry[N Value[N], S Value[S], D Value[D]](entry datamodel.Entry[N, S, D]) ([]byte, error) {
	namespace, err := marshalValue("namespace", entry.Namespace)
	if err != nil {
		return nil, fmt.Errorf("entry: %w", err)
	}
	subspace, err := marshalValue("subspace", entry.Subspace)
	if err != nil {
		return nil, fmt.Errorf("entry: %w", err)
	}
	payloadDigest, err := marshalValue("payload digest", entry.Digest)
	if err != nil {
		return nil, fmt.Errorf("entry: %w", err)
	}
	return Marshal(entryWire{
		Namespace: namespace,
		Subspace:  subspace,
		Path:      pathToWire(entry.Path),
		Time:      uint64(entry.Time),
		Digest:    payloadDigest,
		Length:    entry.Length,
	})
}

// DecodeEntry parses an encoded Entry, validating its Path against the
// namespace's Limits. Fails with ErrLimitExceeded if the input exceeds
// the Guard, and with ErrMalformed if the bytes do not parse or any
// field violates its structural invariants. A failed decode yields no
// partial value.
func DecodeEntry[N Value[N], S Value[S], D Value[D], PN ValuePtr[N], PS ValuePtr[S], PD ValuePtr[D]](
	data []byte, limits datamodel.Limits, guard Guard,
) (datamodel.Entry[N, S, D], error) {
	var zero datamodel.Entry[N, S, D]

	if err := guard.check(data); err != nil {
		return zero, fmt.Errorf("entry: %w", err)
	}

	var wire entryWire
	if err := Unmarshal(data, &wire); err != nil {
		return zero, fmt.Errorf("entry: %w: %w", ErrMalformed, err)
	}

	namespace, err := unmarshalValue[N, PN]("entry namespace", wire.Namespace)
	if err != nil {
		return zero, err
	}
	subspace, err := unmarshalValue[S, PS]("entry subspace", wire.Subspace)
	if err != nil {
		return zero, err
	}
	payloadDigest, err := unmarshalValue[D, PD]("entry payload digest", wire.Digest)
	if err != nil {
		return zero, err
	}
	path, err := pathFromWire(wire.Path, limits)
	if err != nil {
		return zero, fmt.Errorf("entry %w", err)
	}

	entry, err := datamodel.NewEntry(namespace, subspace, path,
		datamodel.Timestamp(wire.Time), payloadDigest, wire.Length, limits)
	if err != nil {
		return zero, fmt.Errorf("entry: %w: %w", ErrMalformed, err)
	}
	return entry, nil
}
