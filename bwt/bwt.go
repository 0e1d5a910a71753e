// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"github.com/dsnet/bwtmtf/internal"
	"github.com/dsnet/bwtmtf/internal/errors"
	"github.com/dsnet/bwtmtf/suffix"
)

// Transform computes the Burrows-Wheeler Transform of buf.
// It returns the rank of the unrotated message in the sorted order of
// rotations and the last column. The input is not modified.
func Transform(buf []byte) (rank int, last []byte, err error) {
	return TransformWithConfig(buf, nil)
}

// TransformWithConfig is like Transform, but sorts rotations according to
// the given configuration.
func TransformWithConfig(buf []byte, conf *suffix.Config) (rank int, last []byte, err error) {
	if uint64(len(buf)) > maxLength {
		return 0, nil, errorf(errors.Invalid, "message too large: %d bytes", len(buf))
	}
	sa, err := suffix.NewWithConfig(buf, conf)
	if err != nil {
		return 0, nil, err
	}

	n := sa.Len()
	last = make([]byte, n)
	for r := 0; r < n; r++ {
		i, _ := sa.Index(r)
		if i == 0 {
			rank = r
			i = n
		}
		last[r] = buf[i-1]
	}
	return rank, last, nil
}

// InverseTransform reconstructs the message from the rank and last column
// produced by Transform. The rank must be within [0, len(last)).
func InverseTransform(rank int, last []byte) ([]byte, error) {
	if len(last) == 0 {
		return nil, errorf(errors.Invalid, "empty last column")
	}
	if rank < 0 || rank >= len(last) {
		return nil, errorf(errors.Invalid, "rank %d out of range [0, %d)", rank, len(last))
	}

	inv := newInverse(last)
	buf := make([]byte, len(last))
	inv.decode(buf, rank)
	return buf, nil
}

// inverse holds the mapping from each position in the first column to the
// position of the same symbol occurrence in the last column.
//
// The k-th occurrence of a symbol in the last column and the k-th occurrence
// of that symbol in the first column belong to the same symbol of the
// message, since both sets of rotations are ordered by what follows the
// symbol. Thus, a stable counting sort of the last column yields the first
// column, and next links every rotation to its successor.
type inverse struct {
	next  []int  // next[rank] = rank of the rotation starting one symbol later
	first []byte // first[rank] = first symbol of the rotation
}

func newInverse(last []byte) *inverse {
	cnts := internal.Histogram(last)
	internal.StartOffsets(&cnts)

	inv := &inverse{
		next:  make([]int, len(last)),
		first: make([]byte, len(last)),
	}
	for i, b := range last {
		r := cnts[b]
		inv.next[r] = i
		inv.first[r] = b
		cnts[b]++
	}
	return inv
}

// decode writes the message starting at the rotation with the given rank
// into buf, which must be as long as the message.
func (inv *inverse) decode(buf []byte, rank int) {
	for i := range buf {
		buf[i] = inv.first[rank]
		rank = inv.next[rank]
	}
}
