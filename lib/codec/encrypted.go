// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"github.com/DerickEddington/sailce/lib/datamodel"
	"github.com/DerickEddington/sailce/lib/pathcrypt"
)

// EncodeEncryptedPath returns the deterministic encoding of a
// ciphertext path. The wire form is identical to a plaintext path's —
// an observer of the bytes alone cannot tell which it is looking at,
// which is deliberate.
func EncodeEncryptedPath(encrypted pathcrypt.EncryptedPath) ([]byte, error) {
	return EncodePath(encrypted.Path())
}

// DecodeEncryptedPath parses an encoded ciphertext path. limits must
// be the ciphertext bound for the namespace (see
// pathcrypt.CiphertextLimits). Error behavior matches DecodePath.
func DecodeEncryptedPath(data []byte, limits datamodel.Limits, guard Guard) (pathcrypt.EncryptedPath, error) {
	path, err := DecodePath(data, limits, guard)
	if err != nil {
		return pathcrypt.EncryptedPath{}, err
	}
	return pathcrypt.EncryptedFromPath(path), nil
}
