// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/DerickEddington/sailce/lib/datamodel"
	"github.com/DerickEddington/sailce/lib/pathcrypt"
	"github.com/DerickEddington/sailce/lib/secret"
)

// ErrUnknownNamespace reports that no root secret is held for the
// requested namespace. Match with errors.Is.
var ErrUnknownNamespace = errors.New("no root secret for namespace")

// Keyring holds path-encryption root secrets, one per namespace
// label, and answers derivation requests without ever handing out the
// secrets themselves. Root secrets live in mmap-backed secret buffers
// (locked against swap, zeroed on close); only derived chain keys —
// which cannot be inverted to the root — leave the keyring.
//
// The namespace label is whatever string the application identifies
// its namespaces by; ident.ID.String() is the usual choice.
//
// A Keyring is safe for concurrent use. It is the one stateful
// collaborator around the pure data-model core.
type Keyring struct {
	mu     sync.Mutex
	scheme pathcrypt.Scheme
	roots  map[string]*secret.Buffer
}

// New returns an empty Keyring deriving keys with the given scheme.
func New(scheme pathcrypt.Scheme) *Keyring {
	return &Keyring{
		scheme: scheme,
		roots:  make(map[string]*secret.Buffer),
	}
}

// SetRoot stores the root secret for a namespace, replacing (and
// zeroing) any previous one. The secret bytes are moved into guarded
// memory and the caller's slice is zeroed in place.
func (kr *Keyring) SetRoot(namespace string, rootSecret []byte) error {
	buffer, err := secret.NewFromBytes(rootSecret)
	if err != nil {
		return fmt.Errorf("storing root secret for %q: %w", namespace, err)
	}

	kr.mu.Lock()
	defer kr.mu.Unlock()

	if previous, ok := kr.roots[namespace]; ok {
		previous.Close()
	}
	kr.roots[namespace] = buffer
	return nil
}

// HasRoot reports whether a root secret is held for the namespace.
func (kr *Keyring) HasRoot(namespace string) bool {
	kr.mu.Lock()
	defer kr.mu.Unlock()

	_, ok := kr.roots[namespace]
	return ok
}

// Namespaces returns the labels of all held root secrets, sorted.
func (kr *Keyring) Namespaces() []string {
	kr.mu.Lock()
	defer kr.mu.Unlock()

	labels := make([]string, 0, len(kr.roots))
	for label := range kr.roots {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// RootKey derives the level-zero chain key for a namespace. Fails
// with ErrUnknownNamespace (wrapped) if no root secret is held.
func (kr *Keyring) RootKey(namespace string) (pathcrypt.Key, error) {
	kr.mu.Lock()
	defer kr.mu.Unlock()

	root, ok := kr.roots[namespace]
	if !ok {
		return pathcrypt.Key{}, fmt.Errorf("%q: %w", namespace, ErrUnknownNamespace)
	}
	return kr.scheme.RootKey(root.Bytes()), nil
}

// Grant derives the subtree key for a plaintext prefix of the
// namespace's path space. The grantee can encrypt and decrypt
// components strictly below the prefix but learns nothing about the
// root secret, ancestor levels, or sibling subtrees — hand the
// returned key to the peer being authorized for that subtree.
func (kr *Keyring) Grant(namespace string, prefix datamodel.Path) (pathcrypt.Key, error) {
	rootKey, err := kr.RootKey(namespace)
	if err != nil {
		return pathcrypt.Key{}, err
	}
	subkey := pathcrypt.DeriveSubkey(kr.scheme, rootKey, prefix)
	rootKey.Zero()
	return subkey, nil
}

// EncryptPath encrypts a whole plaintext path under the namespace's
// chain. limits is the ciphertext bound (pathcrypt.CiphertextLimits).
func (kr *Keyring) EncryptPath(namespace string, path datamodel.Path, limits datamodel.Limits) (pathcrypt.EncryptedPath, error) {
	rootKey, err := kr.RootKey(namespace)
	if err != nil {
		return pathcrypt.EncryptedPath{}, err
	}
	defer rootKey.Zero()
	return pathcrypt.EncryptPath(kr.scheme, rootKey, path, limits)
}

// DecryptPath decrypts a whole ciphertext path of the namespace's
// chain. limits is the plaintext bound.
func (kr *Keyring) DecryptPath(namespace string, encrypted pathcrypt.EncryptedPath, limits datamodel.Limits) (datamodel.Path, error) {
	rootKey, err := kr.RootKey(namespace)
	if err != nil {
		return datamodel.Path{}, err
	}
	defer rootKey.Zero()
	return pathcrypt.DecryptPath(kr.scheme, rootKey, encrypted, limits)
}

// DeleteRoot zeroes and removes the root secret for a namespace.
// Deleting an unknown namespace is a no-op.
func (kr *Keyring) DeleteRoot(namespace string) {
	kr.mu.Lock()
	defer kr.mu.Unlock()

	if root, ok := kr.roots[namespace]; ok {
		root.Close()
		delete(kr.roots, namespace)
	}
}

// Close zeroes and releases every held root secret. The Keyring is
// empty but usable afterwards.
func (kr *Keyring) Close() error {
	kr.mu.Lock()
	defer kr.mu.Unlock()

	var firstError error
	for label, root := range kr.roots {
		if err := root.Close(); err != nil && firstError == nil {
			firstError = fmt.Errorf("closing root secret for %q: %w", label, err)
		}
		delete(kr.roots, label)
	}
	return firstError
}
