// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"encoding"
	"fmt"

	"github.com/DerickEddington/sailce/lib/datamodel"
)

// Value is the capability set a pluggable identifier or digest
// representation needs at the encoding boundary: the data model's
// total order plus a deterministic binary encoding.
type Value[T any] interface {
	datamodel.Comparable[T]
	encoding.BinaryMarshaler
}

// ValuePtr constrains the pointer to a Value type to support decoding
// in place. Instantiations are inferred — callers never name this type
// parameter explicitly.
type ValuePtr[T any] interface {
	*T
	encoding.BinaryUnmarshaler
}

// marshalValue encodes one identifier/digest value for embedding in a
// wire struct.
func marshalValue[T Value[T]](label string, value T) ([]byte, error) {
	raw, err := value.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", label, err)
	}
	return raw, nil
}

// unmarshalValue decodes one identifier/digest value from a wire
// struct field, mapping failures to ErrMalformed.
func unmarshalValue[T any, PT ValuePtr[T]](label string, raw []byte) (T, error) {
	var value T
	if err := PT(&value).UnmarshalBinary(raw); err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w: %w", label, ErrMalformed, err)
	}
	return value, nil
}
