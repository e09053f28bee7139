// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"filippo.io/age"

	"github.com/DerickEddington/sailce/lib/secret"
)

// Keypair holds an age x25519 keypair for root-secret transport. The
// private key lives in a secret.Buffer (mmap-backed, locked against
// swap, excluded from core dumps); the public key is a plain string,
// safe to publish.
//
// The caller must call Close when the keypair is no longer needed.
type Keypair struct {
	// PrivateKey is the secret key in AGE-SECRET-KEY-1... format.
	// Must never be logged or written to disk in plaintext.
	PrivateKey *secret.Buffer

	// PublicKey is the corresponding public key in age1... format.
	PublicKey string
}

// Close releases the private key memory. Idempotent.
func (k *Keypair) Close() error {
	if k.PrivateKey != nil {
		return k.PrivateKey.Close()
	}
	return nil
}

// GenerateKeypair generates a fresh age x25519 keypair, with the
// private key moved into guarded memory immediately.
func GenerateKeypair() (*Keypair, error) {
	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return nil, fmt.Errorf("generating age keypair: %w", err)
	}

	// age hands the private key back as a heap string; copy it into
	// the mmap buffer and zero the intermediate slice. The string
	// itself is GC'd, which is the best Go allows here.
	privateKeyBytes := []byte(identity.String())
	privateKey, err := secret.NewFromBytes(privateKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("protecting private key: %w", err)
	}

	return &Keypair{
		PrivateKey: privateKey,
		PublicKey:  identity.Recipient().String(),
	}, nil
}

// Export encrypts the namespace's root secret to one or more age
// recipients (age1... public key strings) and returns the ciphertext
// as standard base64, suitable for embedding in configuration or a
// message to the receiving party. The root secret itself never leaves
// guarded memory except as the transient plaintext of the age stream.
func (kr *Keyring) Export(namespace string, recipientKeys []string) (string, error) {
	if len(recipientKeys) == 0 {
		return "", fmt.Errorf("exporting root secret: at least one recipient is required")
	}

	recipients := make([]age.Recipient, 0, len(recipientKeys))
	for _, key := range recipientKeys {
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return "", fmt.Errorf("parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}

	kr.mu.Lock()
	root, ok := kr.roots[namespace]
	if !ok {
		kr.mu.Unlock()
		return "", fmt.Errorf("%q: %w", namespace, ErrUnknownNamespace)
	}
	// Copy under the lock; the buffer could be replaced or closed by
	// a concurrent SetRoot/DeleteRoot once we release it.
	plaintext := make([]byte, root.Len())
	copy(plaintext, root.Bytes())
	kr.mu.Unlock()
	defer secret.Zero(plaintext)

	var ciphertextBuffer bytes.Buffer
	writer, err := age.Encrypt(&ciphertextBuffer, recipients...)
	if err != nil {
		return "", fmt.Errorf("creating age encryptor: %w", err)
	}
	if _, err := writer.Write(plaintext); err != nil {
		return "", fmt.Errorf("writing root secret to age encryptor: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finalizing age encryption: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertextBuffer.Bytes()), nil
}

// Import decrypts a base64 age ciphertext produced by Export and
// installs the recovered root secret for the namespace, replacing any
// previous one. The identity buffer (AGE-SECRET-KEY-1... format) is
// borrowed, not closed.
func (kr *Keyring) Import(namespace string, ciphertext string, identityKey *secret.Buffer) error {
	// age.ParseX25519Identity requires a string; the heap copy is
	// brief and request-scoped.
	identity, err := age.ParseX25519Identity(identityKey.String())
	if err != nil {
		return fmt.Errorf("parsing identity key: %w", err)
	}

	rawCiphertext, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return fmt.Errorf("decoding base64 ciphertext: %w", err)
	}

	reader, err := age.Decrypt(bytes.NewReader(rawCiphertext), identity)
	if err != nil {
		return fmt.Errorf("decrypting root secret: %w", err)
	}
	plaintext, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading decrypted root secret: %w", err)
	}
	if len(plaintext) == 0 {
		return fmt.Errorf("decrypted root secret is empty")
	}

	// SetRoot moves the plaintext into guarded memory and zeroes the
	// heap copy via secret.NewFromBytes.
	return kr.SetRoot(namespace, plaintext)
}
