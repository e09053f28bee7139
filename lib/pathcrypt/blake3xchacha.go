// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package pathcrypt

import (
	"crypto/subtle"
	"fmt"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20poly1305"
)

// Blake3XChaCha is the default path-encryption scheme: BLAKE3 keyed
// hashing for the key chain and XChaCha20-Poly1305 for component
// encryption.
//
// Encryption must be deterministic (the same component under the same
// key always yields the same ciphertext, or prefix comparison on
// ciphertext would be meaningless), so the AEAD nonce cannot be
// random. Instead it is synthesized SIV-style: a keyed BLAKE3 hash of
// the plaintext component, truncated to the 24-byte XChaCha nonce.
// The nonce subkey and the encryption subkey are derived from the
// level key under different domain tags, so the nonce reveals nothing
// about the encryption key. The Poly1305 tag doubles as the
// per-component integrity check.
//
// Two components that differ anywhere produce unrelated nonces and
// ciphertexts, so sibling order is not preserved — only the chain
// structure is, which is the point.
type Blake3XChaCha struct{}

// componentOverhead is the ciphertext expansion per component:
// 24 (XChaCha20-Poly1305 nonce) + 16 (Poly1305 tag).
const componentOverhead = chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead

// rootDomainKey is the BLAKE3 key under which root secrets are
// absorbed into level-zero chain keys. ASCII, zero-padded to 32 bytes,
// like every domain key in this repository.
var rootDomainKey = [32]byte{
	's', 'a', 'i', 'l', 'c', 'e', '.', 'p', 'a', 't', 'h', 'c', 'r', 'y', 'p', 't',
	'.', 'r', 'o', 'o', 't', '.', 'v', '1', 0, 0, 0, 0, 0, 0, 0, 0,
}

// Domain tags providing separation between the three uses of a level
// key. Changing any of these changes every ciphertext path.
var (
	deriveDomain  = []byte("sailce.pathcrypt.derive.v1")
	encryptDomain = []byte("sailce.pathcrypt.enc.v1")
	nonceDomain   = []byte("sailce.pathcrypt.siv.v1")
)

// RootKey implements Scheme.
func (Blake3XChaCha) RootKey(secret []byte) Key {
	return keyedHash(rootDomainKey, nil, secret)
}

// DeriveKey implements Scheme. The derivation is a keyed hash of the
// component under the parent key, so walking the chain forward is
// cheap while inverting or hopping between siblings is as hard as
// breaking BLAKE3.
func (Blake3XChaCha) DeriveKey(parent Key, component []byte) Key {
	return keyedHash(parent, deriveDomain, component)
}

// EncryptComponent implements Scheme. Output layout:
//
//	[Nonce: 24 bytes (SIV)] [Ciphertext+Tag: N+16 bytes]
func (Blake3XChaCha) EncryptComponent(key Key, component []byte) []byte {
	encryptionKey := keyedHash(key, encryptDomain, nil)
	nonce := sivNonce(key, component)

	aead, err := chacha20poly1305.NewX(encryptionKey[:])
	if err != nil {
		panic("pathcrypt: XChaCha20-Poly1305 initialization failed (key must be 32 bytes): " + err.Error())
	}

	output := make([]byte, chacha20poly1305.NonceSizeX, componentOverhead+len(component))
	copy(output, nonce[:])
	output = aead.Seal(output, nonce[:chacha20poly1305.NonceSizeX], component, nil)

	encryptionKey.Zero()
	return output
}

// DecryptComponent implements Scheme. Beyond AEAD authentication, the
// recomputed SIV nonce must match the transmitted one — a ciphertext
// whose nonce was not honestly derived from its own plaintext is
// rejected even though it would decrypt under the AEAD alone.
func (Blake3XChaCha) DecryptComponent(key Key, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < componentOverhead {
		return nil, fmt.Errorf("ciphertext component is %d bytes, minimum is %d (nonce + tag)",
			len(ciphertext), componentOverhead)
	}

	encryptionKey := keyedHash(key, encryptDomain, nil)
	defer encryptionKey.Zero()

	nonce := ciphertext[:chacha20poly1305.NonceSizeX]

	aead, err := chacha20poly1305.NewX(encryptionKey[:])
	if err != nil {
		panic("pathcrypt: XChaCha20-Poly1305 initialization failed (key must be 32 bytes): " + err.Error())
	}

	component, err := aead.Open(nil, nonce, ciphertext[chacha20poly1305.NonceSizeX:], nil)
	if err != nil {
		return nil, fmt.Errorf("component authentication failed (corrupted ciphertext or mismatched key chain): %w", err)
	}

	expected := sivNonce(key, component)
	if subtle.ConstantTimeCompare(nonce, expected[:chacha20poly1305.NonceSizeX]) != 1 {
		return nil, fmt.Errorf("component nonce does not match its plaintext (ciphertext not honestly produced)")
	}

	return component, nil
}

// ComponentOverhead implements Scheme.
func (Blake3XChaCha) ComponentOverhead() int { return componentOverhead }

// sivNonce computes the synthetic nonce for a plaintext component
// under a level key.
func sivNonce(key Key, component []byte) Key {
	nonceKey := keyedHash(key, nonceDomain, nil)
	nonce := keyedHash(nonceKey, nil, component)
	nonceKey.Zero()
	return nonce
}

// keyedHash is the shared BLAKE3 keyed-hash primitive: hash domain
// then material under key, returning a 32-byte Key.
func keyedHash(key [KeySize]byte, domain, material []byte) Key {
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("pathcrypt: BLAKE3 keyed hash initialization failed (key must be 32 bytes): " + err.Error())
	}
	if domain != nil {
		hasher.Write(domain)
	}
	hasher.Write(material)

	var result Key
	copy(result[:], hasher.Sum(nil))
	return result
}
