// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package datamodel

import "time"

// Timestamp is a claimed creation time in microseconds since the Unix
// epoch. Timestamps order numerically; when two Entries at the same
// (Namespace, Subspace, Path) carry equal Timestamps, the tie-break in
// Entry.IsNewerThan decides which one wins.
type Timestamp uint64

// Now returns the current wall-clock time as a Timestamp. Peers are
// not assumed to have synchronized clocks; a Timestamp is a logical
// claim, not a trusted measurement.
func Now() Timestamp {
	return Timestamp(time.Now().UnixMicro())
}

// Time converts the Timestamp to a time.Time in UTC.
func (t Timestamp) Time() time.Time {
	return time.UnixMicro(int64(t)).UTC()
}

// Compare returns -1, 0, or +1 ordering t against other numerically.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t < other:
		return -1
	case t > other:
		return 1
	default:
		return 0
	}
}
