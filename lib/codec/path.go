// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"

	"github.com/DerickEddington/sailce/lib/datamodel"
)

// EncodePath returns the deterministic encoding of a Path: a CBOR
// array of byte-string components. Equal Paths always encode to
// identical bytes.
func EncodePath(path datamodel.Path) ([]byte, error) {
	return Marshal(pathToWire(path))
}

// DecodePath parses an encoded Path, validating it against the
// namespace's Limits. Fails with ErrLimitExceeded if the input exceeds
// the Guard, and with ErrMalformed if the bytes do not parse or the
// decoded path violates a structural limit. A failed decode yields no
// partial value.
func DecodePath(data []byte, limits datamodel.Limits, guard Guard) (datamodel.Path, error) {
	if err := guard.check(data); err != nil {
		return datamodel.Path{}, fmt.Errorf("path: %w", err)
	}

	var wire [][]byte
	if err := Unmarshal(data, &wire); err != nil {
		return datamodel.Path{}, fmt.Errorf("path: %w: %w", ErrMalformed, err)
	}
	return pathFromWire(wire, limits)
}

// pathToWire flattens a Path into the wire form. Component slices are
// aliased, not copied; the wire value is encoded immediately and never
// mutated.
func pathToWire(path datamodel.Path) [][]byte {
	wire := make([][]byte, 0, path.Len())
	for component := range path.Components() {
		wire = append(wire, component)
	}
	return wire
}

// pathFromWire validates wire components into a Path, mapping
// structural-limit violations to ErrMalformed.
func pathFromWire(wire [][]byte, limits datamodel.Limits) (datamodel.Path, error) {
	path, err := datamodel.NewPath(limits, wire...)
	if err != nil {
		return datamodel.Path{}, fmt.Errorf("path: %w: %w", ErrMalformed, err)
	}
	return path, nil
}
