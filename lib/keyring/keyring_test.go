// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"bytes"
	"errors"
	"testing"

	"github.com/DerickEddington/sailce/lib/datamodel"
	"github.com/DerickEddington/sailce/lib/pathcrypt"
)

var testLimits = datamodel.Limits{
	MaxComponentLength: 32,
	MaxComponentCount:  6,
	MaxPathLength:      128,
}

func newTestKeyring(t *testing.T) *Keyring {
	t.Helper()
	kr := New(pathcrypt.Blake3XChaCha{})
	t.Cleanup(func() { kr.Close() })
	return kr
}

func setRoot(t *testing.T, kr *Keyring, namespace, material string) {
	t.Helper()
	if err := kr.SetRoot(namespace, []byte(material)); err != nil {
		t.Fatalf("SetRoot(%q): %v", namespace, err)
	}
}

func mustPath(t *testing.T, components ...string) datamodel.Path {
	t.Helper()
	path, err := datamodel.PathFromStrings(testLimits, components...)
	if err != nil {
		t.Fatalf("building path %v: %v", components, err)
	}
	return path
}

func TestRootLifecycle(t *testing.T) {
	kr := newTestKeyring(t)

	if kr.HasRoot("alpha") {
		t.Errorf("empty keyring claims a root for alpha")
	}
	if _, err := kr.RootKey("alpha"); !errors.Is(err, ErrUnknownNamespace) {
		t.Errorf("RootKey on empty keyring: error = %v, want ErrUnknownNamespace", err)
	}

	setRoot(t, kr, "alpha", "root secret for alpha")
	setRoot(t, kr, "beta", "root secret for beta")

	if !kr.HasRoot("alpha") || !kr.HasRoot("beta") {
		t.Errorf("HasRoot misreports after SetRoot")
	}
	namespaces := kr.Namespaces()
	if len(namespaces) != 2 || namespaces[0] != "alpha" || namespaces[1] != "beta" {
		t.Errorf("Namespaces() = %v, want [alpha beta]", namespaces)
	}

	kr.DeleteRoot("alpha")
	if kr.HasRoot("alpha") {
		t.Errorf("root survives DeleteRoot")
	}
	kr.DeleteRoot("alpha") // deleting again is a no-op

	if err := kr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if kr.HasRoot("beta") {
		t.Errorf("root survives Close")
	}
}

func TestSetRootZeroesCallerSlice(t *testing.T) {
	kr := newTestKeyring(t)

	material := []byte("root secret material")
	if err := kr.SetRoot("alpha", material); err != nil {
		t.Fatalf("SetRoot: %v", err)
	}
	if !bytes.Equal(material, make([]byte, len(material))) {
		t.Errorf("caller's secret slice was not zeroed: %q", material)
	}
}

func TestRootKeyIsDeterministic(t *testing.T) {
	kr := newTestKeyring(t)
	setRoot(t, kr, "alpha", "root secret for alpha")
	setRoot(t, kr, "beta", "root secret for beta")

	first, err := kr.RootKey("alpha")
	if err != nil {
		t.Fatalf("RootKey: %v", err)
	}
	second, err := kr.RootKey("alpha")
	if err != nil {
		t.Fatalf("RootKey: %v", err)
	}
	if first != second {
		t.Errorf("same namespace derived different root keys")
	}

	other, err := kr.RootKey("beta")
	if err != nil {
		t.Fatalf("RootKey: %v", err)
	}
	if first == other {
		t.Errorf("different namespaces derived the same root key")
	}
}

func TestGrantMatchesDirectDerivation(t *testing.T) {
	kr := newTestKeyring(t)
	setRoot(t, kr, "alpha", "root secret for alpha")
	prefix := mustPath(t, "docs", "2024")

	granted, err := kr.Grant("alpha", prefix)
	if err != nil {
		t.Fatalf("Grant: %v", err)
	}

	rootKey, err := kr.RootKey("alpha")
	if err != nil {
		t.Fatalf("RootKey: %v", err)
	}
	if want := pathcrypt.DeriveSubkey(pathcrypt.Blake3XChaCha{}, rootKey, prefix); granted != want {
		t.Errorf("Grant result differs from direct subkey derivation")
	}

	if _, err := kr.Grant("missing", prefix); !errors.Is(err, ErrUnknownNamespace) {
		t.Errorf("Grant for unknown namespace: error = %v, want ErrUnknownNamespace", err)
	}
}

func TestEncryptDecryptPathThroughKeyring(t *testing.T) {
	kr := newTestKeyring(t)
	setRoot(t, kr, "alpha", "root secret for alpha")

	cipherLimits := pathcrypt.CiphertextLimits(testLimits, pathcrypt.Blake3XChaCha{})
	path := mustPath(t, "docs", "2024", "report")

	encrypted, err := kr.EncryptPath("alpha", path, cipherLimits)
	if err != nil {
		t.Fatalf("EncryptPath: %v", err)
	}
	decrypted, err := kr.DecryptPath("alpha", encrypted, testLimits)
	if err != nil {
		t.Fatalf("DecryptPath: %v", err)
	}
	if !decrypted.Equal(path) {
		t.Errorf("round-trip through keyring: got %q, want %q", decrypted, path)
	}

	// A different namespace's chain must not decrypt it.
	setRoot(t, kr, "beta", "root secret for beta")
	if _, err := kr.DecryptPath("beta", encrypted, testLimits); !errors.Is(err, pathcrypt.ErrDecryptionFailed) {
		t.Errorf("cross-namespace decrypt: error = %v, want ErrDecryptionFailed", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	source := newTestKeyring(t)
	setRoot(t, source, "alpha", "root secret for alpha")

	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	defer keypair.Close()

	ciphertext, err := source.Export("alpha", []string{keypair.PublicKey})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	receiver := newTestKeyring(t)
	if err := receiver.Import("alpha", ciphertext, keypair.PrivateKey); err != nil {
		t.Fatalf("Import: %v", err)
	}

	// Both keyrings must now derive identical keys.
	sourceKey, err := source.RootKey("alpha")
	if err != nil {
		t.Fatalf("source RootKey: %v", err)
	}
	receiverKey, err := receiver.RootKey("alpha")
	if err != nil {
		t.Fatalf("receiver RootKey: %v", err)
	}
	if sourceKey != receiverKey {
		t.Errorf("imported root derives a different key than the exported one")
	}
}

func TestExportErrors(t *testing.T) {
	kr := newTestKeyring(t)
	setRoot(t, kr, "alpha", "root secret for alpha")

	keypair, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	defer keypair.Close()

	if _, err := kr.Export("missing", []string{keypair.PublicKey}); !errors.Is(err, ErrUnknownNamespace) {
		t.Errorf("Export of unknown namespace: error = %v, want ErrUnknownNamespace", err)
	}
	if _, err := kr.Export("alpha", nil); err == nil {
		t.Errorf("Export with no recipients succeeded")
	}
	if _, err := kr.Export("alpha", []string{"not an age key"}); err == nil {
		t.Errorf("Export to malformed recipient succeeded")
	}
}

func TestImportRejectsWrongIdentity(t *testing.T) {
	source := newTestKeyring(t)
	setRoot(t, source, "alpha", "root secret for alpha")

	intended, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	defer intended.Close()
	interloper, err := GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	defer interloper.Close()

	ciphertext, err := source.Export("alpha", []string{intended.PublicKey})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	receiver := newTestKeyring(t)
	if err := receiver.Import("alpha", ciphertext, interloper.PrivateKey); err == nil {
		t.Errorf("Import with the wrong identity succeeded")
	}
	if receiver.HasRoot("alpha") {
		t.Errorf("failed Import left a root behind")
	}
}
