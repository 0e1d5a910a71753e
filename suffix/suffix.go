// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package suffix

import "github.com/dsnet/bwtmtf/internal/errors"

// Array is the sorted order of all circular rotations of a message.
// It is immutable once constructed and safe for concurrent use.
type Array struct {
	order []int // order[rank] = offset
	ranks []int // ranks[offset] = rank
}

// New computes the sorted order of the circular rotations of buf.
// The input is not modified.
func New(buf []byte) (*Array, error) {
	return NewWithConfig(buf, nil)
}

// NewWithConfig is like New, but uses the provided configuration.
// A nil Config is equivalent to the zero value.
func NewWithConfig(buf []byte, conf *Config) (*Array, error) {
	if buf == nil {
		return nil, errorf(errors.Invalid, "nil message")
	}
	if len(buf) == 0 {
		return nil, errorf(errors.Invalid, "empty message")
	}

	n := len(buf)
	sa := &Array{order: make([]int, n), ranks: make([]int, n)}
	for i := range sa.order {
		sa.order[i] = i
	}
	if n < naiveLimit {
		sortNaive(buf, sa.order)
	} else {
		sortDoubling(buf, sa.order, conf.workers())
	}
	for r, i := range sa.order {
		sa.ranks[i] = r
	}
	return sa, nil
}

// Len reports the length of the message.
func (sa *Array) Len() int { return len(sa.order) }

// Index returns the offset of the rotation at the given position in the
// sorted order.
func (sa *Array) Index(rank int) (int, error) {
	if rank < 0 || rank >= len(sa.order) {
		return 0, errorf(errors.Invalid, "rank %d out of range [0, %d)", rank, len(sa.order))
	}
	return sa.order[rank], nil
}

// Rank returns the position in the sorted order of the rotation starting
// at offset. It is the inverse of Index.
func (sa *Array) Rank(offset int) (int, error) {
	if offset < 0 || offset >= len(sa.ranks) {
		return 0, errorf(errors.Invalid, "offset %d out of range [0, %d)", offset, len(sa.ranks))
	}
	return sa.ranks[offset], nil
}

// Order returns a copy of the sorted order.
func (sa *Array) Order() []int {
	return append([]int(nil), sa.order...)
}
