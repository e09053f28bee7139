// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical value always
// produces identical bytes, which is what lets an encoding double as a
// cache key, a digest input, and a storage index key.
var encMode cbor.EncMode

// decMode is the CBOR decoder configured strictly: duplicate map keys
// and indefinite-length items are rejected, so only the canonical form
// an honest peer produces will parse. Untrusted input that deviates
// fails cleanly instead of decoding to an ambiguous value.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v, rejecting non-canonical input
// and trailing bytes.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder is a CBOR stream encoder. Type alias so consumers import
// only lib/codec, not fxamacker/cbor directly.
type Encoder = cbor.Encoder

// Decoder is a CBOR stream decoder. Type alias so consumers import
// only lib/codec, not fxamacker/cbor directly.
type Decoder = cbor.Decoder

// RawMessage is a raw encoded CBOR value, usable to delay decoding or
// to splice pre-encoded output.
type RawMessage = cbor.RawMessage

// NewEncoder returns a CBOR encoder that writes each encoded value to
// sink using Core Deterministic Encoding. CBOR items are
// self-delimiting, so consecutive values need no framing.
func NewEncoder(sink io.Writer) *Encoder {
	return encMode.NewEncoder(sink)
}

// NewDecoder returns a CBOR decoder that reads consecutive values from
// source using the strict decoding configuration.
func NewDecoder(source io.Reader) *Decoder {
	return decMode.NewDecoder(source)
}
