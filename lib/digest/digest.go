// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Size is the byte length of every payload digest.
const Size = 32

// Digest is a 32-byte BLAKE3 digest identifying a payload without
// holding it. Digests order lexicographically, which is the total
// order the Entry conflict tie-break relies on.
type Digest [Size]byte

// payloadDomainKey is the BLAKE3 key for payload hashing. Domain
// separation keeps payload digests from ever colliding with hashes
// computed for other purposes over the same bytes. The byte values are
// the ASCII encoding of the domain name, zero-padded to 32 bytes, so
// the key is inspectable in hex dumps without losing any cryptographic
// property (BLAKE3 keyed mode treats the key as opaque).
var payloadDomainKey = [32]byte{
	's', 'a', 'i', 'l', 'c', 'e', '.', 'p', 'a', 'y', 'l', 'o', 'a', 'd', '.', 'v',
	'1', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// HashPayload computes the digest and length of an in-memory payload.
// For payloads too large to hold in memory, stream them through a
// [Hasher] instead.
func HashPayload(payload []byte) (Digest, uint64) {
	hasher := NewHasher()
	hasher.Write(payload)
	return hasher.Sum()
}

// Hasher streams a payload through the payload-domain BLAKE3 hash,
// tracking the byte count, so arbitrarily large payloads can be
// digested in chunks with constant memory.
type Hasher struct {
	inner  *blake3.Hasher
	length uint64
}

// NewHasher returns a Hasher ready to consume payload bytes.
func NewHasher() *Hasher {
	inner, err := blake3.NewKeyed(payloadDomainKey[:])
	if err != nil {
		panic("digest: BLAKE3 keyed hash initialization failed (key must be 32 bytes): " + err.Error())
	}
	return &Hasher{inner: inner}
}

// Write implements io.Writer. It never returns an error.
func (h *Hasher) Write(chunk []byte) (int, error) {
	h.inner.Write(chunk)
	h.length += uint64(len(chunk))
	return len(chunk), nil
}

// Sum returns the digest of everything written so far and the total
// byte count. The Hasher may continue to be written to afterwards.
func (h *Hasher) Sum() (Digest, uint64) {
	var result Digest
	copy(result[:], h.inner.Sum(nil))
	return result, h.length
}

// Compare orders digests lexicographically by their bytes. Returns
// -1, 0, or +1.
func (d Digest) Compare(other Digest) int {
	return bytes.Compare(d[:], other[:])
}

// Equal reports whether both digests are identical.
func (d Digest) Equal(other Digest) bool { return d == other }

// String returns the canonical hex form.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// MarshalBinary implements encoding.BinaryMarshaler as the raw 32
// bytes.
func (d Digest) MarshalBinary() ([]byte, error) {
	return bytes.Clone(d[:]), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, validating
// the length.
func (d *Digest) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return fmt.Errorf("payload digest is %d bytes, want %d", len(data), Size)
	}
	copy(d[:], data)
	return nil
}

// MarshalText implements encoding.TextMarshaler as the hex form.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from the hex form.
func (d *Digest) UnmarshalText(text []byte) error {
	raw, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("parsing payload digest: %w", err)
	}
	return d.UnmarshalBinary(raw)
}
