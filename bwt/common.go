// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the Burrows-Wheeler Transform.
//
// The forward transform sorts all circular rotations of a message and emits
// the symbol preceding each rotation in sorted order (the last column),
// together with the rank of the original message within that order.
// The inverse transform reconstructs the message from the rank and the last
// column in O(n) time without sorting any rotations.
//
// Stream format:
//
//	rank:   32-bit unsigned integer in big-endian byte order
//	column: n bytes of the last column
//
// The message length n is not stored and is implied by the stream length.
// An empty message is encoded as an empty stream.
//
// References:
//
//	http://www.hpl.hp.com/techreports/Compaq-DEC/SRC-RR-124.pdf
//	https://www.quora.com/How-can-I-optimize-burrows-wheeler-transform-and-inverse-transform-to-work-in-O-n-time-O-n-space
package bwt

import (
	"fmt"

	"github.com/dsnet/bwtmtf/internal/errors"
)

const (
	rankBits   = 32
	headerSize = rankBits / 8

	maxLength = 1<<rankBits - 1 // Largest message with a representable rank
)

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "bwt", Msg: fmt.Sprintf(f, a...)}
}

var errClosed = errorf(errors.Closed, "")
