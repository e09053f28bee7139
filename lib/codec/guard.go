// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
)

// ErrMalformed reports that decoded bytes do not parse into a
// structurally valid value: truncated input, non-canonical CBOR, a
// wrong shape, or a value violating the entity's own invariants (e.g.
// a path exceeding the configured Limits). Returned wrapped with
// context; match with errors.Is.
var ErrMalformed = errors.New("malformed encoding")

// ErrLimitExceeded reports that untrusted input exceeded a
// caller-supplied defensive bound (Guard), distinct from the model's
// own structural limits. Match with errors.Is.
var ErrLimitExceeded = errors.New("input limit exceeded")

// Guard bounds how much untrusted input a decode operation will
// accept before parsing anything, defending against unbounded
// allocation. The zero value applies no bound, appropriate only for
// trusted input.
//
// Exceeding a Guard is an ordinary, cheap outcome on
// attacker-controlled input, not an exceptional condition: callers at
// the protocol layer should drop the offending message and move on.
type Guard struct {
	// MaxBytes is the maximum accepted encoded size in bytes. Zero
	// means unbounded.
	MaxBytes int
}

// check validates the input size before any parse work happens.
func (g Guard) check(data []byte) error {
	if g.MaxBytes > 0 && len(data) > g.MaxBytes {
		return fmt.Errorf("encoded value is %d bytes, guard allows %d: %w",
			len(data), g.MaxBytes, ErrLimitExceeded)
	}
	return nil
}
