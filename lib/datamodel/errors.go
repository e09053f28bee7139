// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package datamodel

import "errors"

// ErrLengthExceeded reports that a structural limit — component
// length, component count, or total path length — was violated while
// constructing a Path or an Entry. Returned wrapped with context;
// match with errors.Is.
var ErrLengthExceeded = errors.New("length limit exceeded")

// ErrNotAuthorised reports that an authorisation token does not prove
// write permission for the Entry it was paired with.
var ErrNotAuthorised = errors.New("entry not authorised")
