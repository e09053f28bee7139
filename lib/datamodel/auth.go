// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package datamodel

import "fmt"

// VerifyFunc decides whether token proves write permission for entry.
// The concrete token representation and verification scheme (e.g. a
// signature over the Entry's deterministic encoding) are chosen by the
// embedding application.
type VerifyFunc[N Comparable[N], S Comparable[S], D Comparable[D], T any] func(
	entry Entry[N, S, D], token T,
) bool

// AuthorisedEntry pairs an Entry with an authorisation token that has
// been verified to permit writing it. The fields are unexported so a
// value can only be built through Authorise, which makes "every
// AuthorisedEntry is actually authorised" hold by construction.
type AuthorisedEntry[N Comparable[N], S Comparable[S], D Comparable[D], T any] struct {
	entry Entry[N, S, D]
	token T
}

// Authorise verifies the token against the entry and returns the pair,
// or ErrNotAuthorised (wrapped) if verification fails.
func Authorise[N Comparable[N], S Comparable[S], D Comparable[D], T any](
	entry Entry[N, S, D], token T, verify VerifyFunc[N, S, D, T],
) (AuthorisedEntry[N, S, D, T], error) {
	if !verify(entry, token) {
		return AuthorisedEntry[N, S, D, T]{}, fmt.Errorf("token does not permit writing %q: %w",
			entry.Path.String(), ErrNotAuthorised)
	}
	return AuthorisedEntry[N, S, D, T]{entry: entry, token: token}, nil
}

// Entry returns the authorised Entry.
func (a AuthorisedEntry[N, S, D, T]) Entry() Entry[N, S, D] { return a.entry }

// Token returns the token that authorised the Entry.
func (a AuthorisedEntry[N, S, D, T]) Token() T { return a.token }
