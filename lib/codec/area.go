// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"fmt"

	"github.com/DerickEddington/sailce/lib/datamodel"
)

// areaWire is the wire shape of an Area. The subspace selector
// flattens to (Any, Subspace): when Any is true the Subspace field is
// absent, so each logical selector has exactly one canonical byte
// form.
type areaWire struct {
	Any      bool     `cbor:"1,keyasint"`
	Subspace []byte   `cbor:"2,keyasint,omitempty"`
	Prefix   [][]byte `cbor:"3,keyasint"`
	Start    uint64   `cbor:"4,keyasint"`
	End      uint64   `cbor:"5,keyasint"`
	Open     bool     `cbor:"6,keyasint"`
}

// EncodeArea returns the deterministic encoding of an Area. Equal
// Areas always encode to identical bytes.
func EncodeArea[S Value[S]](area datamodel.Area[S]) ([]byte, error) {
	wire := areaWire{
		Any:    area.Subspace.IsAny(),
		Prefix: pathToWire(area.Prefix),
		Start:  uint64(area.Times.Start),
		Open:   area.Times.Open,
	}
	if !area.Times.Open {
		wire.End = uint64(area.Times.End)
	}
	if id, ok := area.Subspace.ID(); ok {
		subspace, err := marshalValue("subspace", id)
		if err != nil {
			return nil, fmt.Errorf("area: %w", err)
		}
		wire.Subspace = subspace
	}
	return Marshal(wire)
}

// DecodeArea parses an encoded Area, validating the prefix against the
// namespace's Limits and the time range's start <= end invariant.
// Fails with ErrLimitExceeded if the input exceeds the Guard, and with
// ErrMalformed if the bytes do not parse or violate an invariant. A
// failed decode yields no partial value.
func DecodeArea[S Value[S], PS ValuePtr[S]](
	data []byte, limits datamodel.Limits, guard Guard,
) (datamodel.Area[S], error) {
	var zero datamodel.Area[S]

	if err := guard.check(data); err != nil {
		return zero, fmt.Errorf("area: %w", err)
	}

	var wire areaWire
	if err := Unmarshal(data, &wire); err != nil {
		return zero, fmt.Errorf("area: %w: %w", ErrMalformed, err)
	}

	selector := datamodel.AnySubspace[S]()
	switch {
	case wire.Any && wire.Subspace != nil:
		return zero, fmt.Errorf("area: %w: subspace id present on an any-subspace selector", ErrMalformed)
	case !wire.Any:
		id, err := unmarshalValue[S, PS]("area subspace", wire.Subspace)
		if err != nil {
			return zero, err
		}
		selector = datamodel.OneSubspace(id)
	}

	prefix, err := pathFromWire(wire.Prefix, limits)
	if err != nil {
		return zero, fmt.Errorf("area %w", err)
	}

	times := datamodel.Range{
		Start: datamodel.Timestamp(wire.Start),
		End:   datamodel.Timestamp(wire.End),
		Open:  wire.Open,
	}
	if wire.Open && wire.End != 0 {
		return zero, fmt.Errorf("area: %w: end bound present on an open time range", ErrMalformed)
	}
	if !wire.Open && wire.End < wire.Start {
		return zero, fmt.Errorf("area: %w: time range end %d is before start %d",
			ErrMalformed, wire.End, wire.Start)
	}

	return datamodel.Area[S]{Subspace: selector, Prefix: prefix, Times: times}, nil
}
