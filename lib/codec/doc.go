// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the deterministic encoding layer for the data
// model: every entity serializes to CBOR Core Deterministic Encoding
// (RFC 8949 §4.2) via fxamacker/cbor, so the same logical value always
// yields the same bytes. The encodings double as storage index keys,
// content-addressing inputs, and the wire form for transfer between
// peers; CBOR items are self-delimiting, so consecutive values need no
// framing.
//
// Decoding is defensive on two independent axes:
//
//   - [ErrMalformed] -- the bytes do not parse, are non-canonical, or
//     decode to a value violating the entity's structural invariants
//     (e.g. a Path beyond the configured datamodel.Limits)
//   - [ErrLimitExceeded] -- the input exceeds a caller-supplied [Guard]
//     bound, checked before any allocation or parse work
//
// Both are ordinary outcomes on untrusted input; protocol layers drop
// the offending message rather than crash or retry.
//
// Key exports:
//
//   - [EncodePath] / [DecodePath]
//   - [EncodeEntry] / [DecodeEntry]
//   - [EncodeArea] / [DecodeArea]
//   - [EncodeEncryptedPath] / [DecodeEncryptedPath]
//   - [Marshal] / [Unmarshal], [NewEncoder] / [NewDecoder] -- the
//     underlying deterministic CBOR configuration
//
// The per-entity functions are generic over the identifier and digest
// representations ([Value] / [ValuePtr]), so any parameter choice that
// encodes deterministically works with the same logic.
package codec
