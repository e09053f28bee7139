// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

// Package keyring manages path-encryption root secrets across
// namespaces.
//
// A Keyring maps namespace labels to root secrets held in mmap-backed
// guarded memory (lib/secret), and derives chain keys from them on
// demand with a pathcrypt.Scheme. Callers never see the secrets:
// RootKey and Grant hand out only derived keys, which cannot be
// inverted back to the root.
//
// Grant is the delegation primitive. Grant(namespace, prefix) walks
// the key chain down the prefix and returns the subtree key, letting
// a peer work below that prefix while learning nothing about
// ancestors or siblings.
//
// Root secrets move between parties age-encrypted: Export seals a
// root secret to x25519 recipients as base64 text, Import unseals and
// installs one. GenerateKeypair creates transport keypairs with the
// private half in guarded memory.
//
// Key exports:
//
//   - [Keyring] -- concurrent-safe root-secret store and key deriver
//   - [Keyring.Grant] -- subtree key delegation
//   - [Keyring.Export] / [Keyring.Import] -- age-sealed root transport
//   - [Keypair] / [GenerateKeypair] -- x25519 transport keypairs
//   - [ErrUnknownNamespace] -- no root held for the namespace
//
// Depends on lib/secret for guarded memory, lib/pathcrypt for the
// derivation scheme, and filippo.io/age for sealed transport.
package keyring
