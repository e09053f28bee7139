// Copyright 2026 The Sailce Authors
// SPDX-License-Identifier: Apache-2.0

package datamodel

import (
	"bytes"
	"fmt"
	"iter"
	"strings"
)

// Limits bounds the shape of every Path in a namespace. All peers of a
// namespace must agree on the same Limits, or they will disagree about
// which Paths are valid. Encrypted paths are usually validated against
// a second, larger Limits value that accounts for the per-component
// ciphertext overhead.
type Limits struct {
	// MaxComponentLength is the maximum byte length of a single
	// component.
	MaxComponentLength int

	// MaxComponentCount is the maximum number of components per path.
	MaxComponentCount int

	// MaxPathLength is the maximum total byte length of all components
	// of a path combined.
	MaxPathLength int
}

// Path is a bounded ordered sequence of byte-string components naming
// an Entry within a Subspace, analogous to a filesystem path without
// separators. A Path is an immutable value: construction copies the
// component bytes, and every operation returns a new Path. The zero
// value is the empty path, which is a prefix of every path.
type Path struct {
	components  [][]byte
	totalLength int
}

// NewPath builds a Path from the given components, validating each
// limit in Limits. The component bytes are copied, so the caller may
// reuse its slices afterwards. Fails with ErrLengthExceeded (wrapped)
// if any limit is violated; no partial Path is returned.
func NewPath(limits Limits, components ...[]byte) (Path, error) {
	if len(components) > limits.MaxComponentCount {
		return Path{}, fmt.Errorf("path has %d components, limit is %d: %w",
			len(components), limits.MaxComponentCount, ErrLengthExceeded)
	}

	total := 0
	copied := make([][]byte, len(components))
	for index, component := range components {
		if len(component) > limits.MaxComponentLength {
			return Path{}, fmt.Errorf("component %d is %d bytes, limit is %d: %w",
				index, len(component), limits.MaxComponentLength, ErrLengthExceeded)
		}
		total += len(component)
		if total > limits.MaxPathLength {
			return Path{}, fmt.Errorf("path is over %d total bytes, limit is %d: %w",
				total, limits.MaxPathLength, ErrLengthExceeded)
		}
		copied[index] = bytes.Clone(component)
	}
	return Path{components: copied, totalLength: total}, nil
}

// PathFromStrings builds a Path from string components. Convenience
// for the common case of UTF-8 path components.
func PathFromStrings(limits Limits, components ...string) (Path, error) {
	raw := make([][]byte, len(components))
	for index, component := range components {
		raw[index] = []byte(component)
	}
	return NewPath(limits, raw...)
}

// Len returns the number of components.
func (p Path) Len() int { return len(p.components) }

// IsEmpty reports whether the path has no components.
func (p Path) IsEmpty() bool { return len(p.components) == 0 }

// TotalLength returns the total byte length of all components.
func (p Path) TotalLength() int { return p.totalLength }

// Component returns the i-th component. The returned slice aliases the
// path's internal storage and must not be modified.
func (p Path) Component(i int) []byte { return p.components[i] }

// Components returns an iterator over the components in order. The
// sequence is finite and restartable (ranging again starts over). The
// yielded slices alias the path's internal storage and must not be
// modified.
func (p Path) Components() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, component := range p.components {
			if !yield(component) {
				return
			}
		}
	}
}

// CheckLimits validates the path against a Limits value it may not
// have been constructed under (e.g. after decoding, or before
// encryption under ciphertext limits). Fails with ErrLengthExceeded
// (wrapped) on the first violated limit.
func (p Path) CheckLimits(limits Limits) error {
	if len(p.components) > limits.MaxComponentCount {
		return fmt.Errorf("path has %d components, limit is %d: %w",
			len(p.components), limits.MaxComponentCount, ErrLengthExceeded)
	}
	if p.totalLength > limits.MaxPathLength {
		return fmt.Errorf("path is %d total bytes, limit is %d: %w",
			p.totalLength, limits.MaxPathLength, ErrLengthExceeded)
	}
	for index, component := range p.components {
		if len(component) > limits.MaxComponentLength {
			return fmt.Errorf("component %d is %d bytes, limit is %d: %w",
				index, len(component), limits.MaxComponentLength, ErrLengthExceeded)
		}
	}
	return nil
}

// IsPrefixOf reports whether the first components of other are exactly
// the components of p. Every path is a prefix of itself, and the empty
// path is a prefix of every path. ["a"] is a prefix of ["a"] and of
// ["a", "b"], but not of ["ab"].
func (p Path) IsPrefixOf(other Path) bool {
	if len(p.components) > len(other.components) {
		return false
	}
	for index, component := range p.components {
		if !bytes.Equal(component, other.components[index]) {
			return false
		}
	}
	return true
}

// Compare orders paths component-wise lexicographically. When one path
// is a proper prefix of the other, the shorter path sorts first.
// Returns -1, 0, or +1.
func (p Path) Compare(other Path) int {
	shorter := min(len(p.components), len(other.components))
	for index := range shorter {
		if c := bytes.Compare(p.components[index], other.components[index]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.components) < len(other.components):
		return -1
	case len(p.components) > len(other.components):
		return 1
	default:
		return 0
	}
}

// Equal reports whether both paths have identical components.
func (p Path) Equal(other Path) bool {
	return len(p.components) == len(other.components) && p.Compare(other) == 0
}

// Join returns the concatenation of p followed by other, validated
// against limits. Fails with ErrLengthExceeded (wrapped) if the
// combined path would violate any limit; neither input is modified.
func (p Path) Join(other Path, limits Limits) (Path, error) {
	combined := make([][]byte, 0, len(p.components)+len(other.components))
	combined = append(combined, p.components...)
	combined = append(combined, other.components...)
	return NewPath(limits, combined...)
}

// Append returns a new Path with one component appended, validated
// against limits.
func (p Path) Append(component []byte, limits Limits) (Path, error) {
	combined := make([][]byte, 0, len(p.components)+1)
	combined = append(combined, p.components...)
	combined = append(combined, component)
	return NewPath(limits, combined...)
}

// Prefix returns the path consisting of the first k components. The
// result shares storage with p, which is safe because paths are
// immutable. Panics if k is negative or greater than p.Len().
func (p Path) Prefix(k int) Path {
	total := 0
	for _, component := range p.components[:k] {
		total += len(component)
	}
	return Path{components: p.components[:k:k], totalLength: total}
}

// String renders the path for logs and test failures: components
// joined by "/", with bytes outside printable ASCII escaped as \xNN.
// This form is for display only and is not parsed back.
func (p Path) String() string {
	var builder strings.Builder
	for index, component := range p.components {
		if index > 0 {
			builder.WriteByte('/')
		}
		for _, b := range component {
			if b >= 0x20 && b < 0x7f && b != '/' && b != '\\' {
				builder.WriteByte(b)
			} else {
				fmt.Fprintf(&builder, "\\x%02x", b)
			}
		}
	}
	return builder.String()
}
