// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of alphabet helpers shared by the
// transforms.
//
// For performance reasons, these helpers lack strong error checking and
// require that the caller to ensure that strict invariants are kept.
package internal

// AlphabetSize is the number of distinct symbols in the alphabet (R).
const AlphabetSize = 256

// IdentityLUT returns the input key itself. It doubles as the natural
// ascending order of the alphabet.
var IdentityLUT [AlphabetSize]byte

func init() {
	for i := range IdentityLUT {
		IdentityLUT[i] = uint8(i)
	}
}

// Histogram returns the number of occurrences of every symbol in buf.
func Histogram(buf []byte) (cnts [AlphabetSize]int) {
	for _, b := range buf {
		cnts[b]++
	}
	return cnts
}

// StartOffsets converts a histogram into an exclusive prefix sum in place.
// Afterwards, cnts[s] is the position of the first occurrence of s in the
// sorted order of the counted symbols.
func StartOffsets(cnts *[AlphabetSize]int) {
	var sum int
	for i, v := range cnts {
		cnts[i] = sum
		sum += v
	}
}
