// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "strings"

const twain = "The Adventures of Tom Sawyer. TOM! No answer. TOM! No answer. " +
	"What's gone with that boy, I wonder? You TOM! No answer. The old lady " +
	"pulled her spectacles down and looked over them about the room; then " +
	"she put them up and looked out under them. She seldom or never looked " +
	"through them for so small a thing as a boy; they were her state pair, " +
	"the pride of her heart, and were built for style, not service. "

// Corpus returns a set of deterministic messages of roughly n bytes each,
// keyed by name. The messages cover the shapes that stress a rotation sort:
// constant, random, periodic, repetitive and natural text.
func Corpus(n int) map[string][]byte {
	r := NewRand(0)
	return map[string][]byte{
		"zeros.bin":    make([]byte, n),
		"random.bin":   r.Bytes(n),
		"periodic.bin": []byte(strings.Repeat("abcab", n/5+1))[:n],
		"repeats.bin":  Repeats(r, n),
		"digits.txt":   r.Symbols(n, []byte("0123456789")),
		"twain.txt":    ResizeData([]byte(twain), n),
	}
}

// Repeats generates n bytes where most of the data is a copy of some earlier
// portion of the output. Since the source data is mostly random, long runs of
// identical context appear at scattered offsets.
func Repeats(r *Rand, n int) []byte {
	b := make([]byte, 0, n)
	randLen := func() int { return 4 + r.Intn(252) }
	for len(b) < n {
		if len(b) < 16 || r.Intn(10) == 0 {
			b = append(b, r.Bytes(randLen())...)
			continue
		}
		d, l := 1+r.Intn(len(b)), randLen()
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}
	return b[:n]
}
